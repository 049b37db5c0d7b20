package rest

import (
	"github.com/Chronicle20/atlas-rest/requests"
)

// MakeGetRequest builds a GET request carrying tenant and span headers
func MakeGetRequest[A any](url string, configurators ...requests.Configurator) requests.Request[A] {
	return requests.MakeGetRequest[A](url, configurators...)
}

// MakePostRequest builds a POST request carrying tenant and span headers
func MakePostRequest[A any](url string, i interface{}, configurators ...requests.Configurator) requests.Request[A] {
	return requests.MakePostRequest[A](url, i, configurators...)
}

// MakePatchRequest builds a PATCH request carrying tenant and span headers
func MakePatchRequest[A any](url string, i interface{}, configurators ...requests.Configurator) requests.Request[A] {
	return requests.MakePatchRequest[A](url, i, configurators...)
}

// MakeDeleteRequest builds a DELETE request carrying tenant and span headers
func MakeDeleteRequest(url string, configurators ...requests.Configurator) requests.EmptyBodyRequest {
	return requests.MakeDeleteRequest(url, configurators...)
}

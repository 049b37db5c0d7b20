package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
)

// HandlerDependency carries the logger and request context into handlers
type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

// Logger returns the handler logger
func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

// Context returns the handler context
func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

// HandlerContext carries server information into handlers
type HandlerContext struct {
	si jsonapi.ServerInformation
}

// ServerInformation returns the JSON:API server information
func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

// GetHandler is a handler producing function for read endpoints
type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

// InputHandler is a handler producing function for endpoints with a request body
type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

// RegisterHandler wraps a handler with span and tenant extraction
func RegisterHandler(l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return server.RetrieveSpan(l, handlerName, context.Background(), func(sl logrus.FieldLogger, sctx context.Context) http.HandlerFunc {
				fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
				return server.ParseTenant(fl, sctx, func(tl logrus.FieldLogger, tctx context.Context) http.HandlerFunc {
					return handler(&HandlerDependency{l: tl, ctx: tctx}, &HandlerContext{si: si})
				})
			})
		}
	}
}

// RegisterInputHandler wraps a body-parsing handler with span and tenant extraction
func RegisterInputHandler[M any](l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return server.RetrieveSpan(l, handlerName, context.Background(), func(sl logrus.FieldLogger, sctx context.Context) http.HandlerFunc {
				fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
				return server.ParseTenant(fl, sctx, func(tl logrus.FieldLogger, tctx context.Context) http.HandlerFunc {
					d := &HandlerDependency{l: tl, ctx: tctx}
					c := &HandlerContext{si: si}
					return ParseInput[M](d, c, handler)
				})
			})
		}
	}
}

// ParseInput decodes the request body into the model before invoking the handler
func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next InputHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M
		if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
			d.Logger().WithError(err).Error("Unable to decode request body.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(d, c, model)(w, r)
	}
}

// ClientIdHandler consumes a parsed client id path variable
type ClientIdHandler func(clientId uint32) http.HandlerFunc

// ParseClientId extracts the clientId path variable
func ParseClientId(l logrus.FieldLogger, next ClientIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientId, err := strconv.Atoi(mux.Vars(r)["clientId"])
		if err != nil {
			l.WithError(err).Error("Unable to parse clientId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(clientId))(w, r)
	}
}

// VesselNameHandler consumes a parsed vessel name path variable
type VesselNameHandler func(vesselName string) http.HandlerFunc

// ParseVesselName extracts the vesselName path variable
func ParseVesselName(l logrus.FieldLogger, next VesselNameHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vesselName := mux.Vars(r)["vesselName"]
		if vesselName == "" {
			l.Error("Unable to parse vesselName from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(vesselName)(w, r)
	}
}

package client

import (
	"context"
	"fmt"
	"os"

	"atlas-marina/rest"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EnvServiceUrl locates the client registry service
const EnvServiceUrl = "CLIENTS_SERVICE_URL"

// RestModel is the client registry's wire representation of a client
type RestModel struct {
	Id                 uint32 `json:"id"`
	Name               string `json:"name"`
	VesselName         string `json:"vesselName"`
	Ownership          string `json:"ownership"`
	Blocked            bool   `json:"blocked"`
	VesselManufacturer string `json:"vesselManufacturer"`
	VesselModel        string `json:"vesselModel"`
	VesselYear         uint16 `json:"vesselYear"`
}

// Extract transforms a wire model to the domain model
func Extract(rm RestModel) (Model, error) {
	ownership := OwnershipShared
	if rm.Ownership == "SOLE" {
		ownership = OwnershipSole
	}
	return Model{
		id:                 rm.Id,
		name:               rm.Name,
		vesselName:         rm.VesselName,
		ownership:          ownership,
		blocked:            rm.Blocked,
		vesselManufacturer: rm.VesselManufacturer,
		vesselModel:        rm.VesselModel,
		vesselYear:         rm.VesselYear,
	}, nil
}

// Processor interface defines client profile retrieval operations
type Processor interface {
	GetById(clientId uint32) (Model, error)
	ByIdProvider(clientId uint32) model.Provider[Model]
}

// ProcessorImpl implements the Processor interface
type ProcessorImpl struct {
	l   logrus.FieldLogger
	ctx context.Context
	db  *gorm.DB
	t   tenant.Model
}

// NewProcessor creates a new processor instance
func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) Processor {
	return &ProcessorImpl{
		l:   l,
		ctx: ctx,
		db:  db,
		t:   tenant.MustFromContext(ctx),
	}
}

// GetById retrieves a client profile from the registry service
func (p *ProcessorImpl) GetById(clientId uint32) (Model, error) {
	return p.ByIdProvider(clientId)()
}

// ByIdProvider returns a provider for a client profile lookup
func (p *ProcessorImpl) ByIdProvider(clientId uint32) model.Provider[Model] {
	return func() (Model, error) {
		url := fmt.Sprintf("%s/clients/%d", os.Getenv(EnvServiceUrl), clientId)
		rm, err := rest.MakeGetRequest[RestModel](url)(p.l, p.ctx)
		if err != nil {
			return Model{}, err
		}
		return Extract(rm)
	}
}

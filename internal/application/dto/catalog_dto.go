package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MunicipalityRequest alta/modificación de un comune.
type MunicipalityRequest struct {
	IstatCode        string `json:"istat_code" validate:"required,len=6,numeric"`
	Name             string `json:"name" validate:"required,max=120"`
	Province         string `json:"province" validate:"omitempty,len=2,alpha"`
	Region           string `json:"region" validate:"max=60"`
	Population       *int   `json:"population" validate:"omitempty,min=0"`
	DelegationActive bool   `json:"delegation_active"`
	DelegationCode   string `json:"delegation_code" validate:"max=40"`
}

// MunicipalityResponse comune.
type MunicipalityResponse struct {
	ID               string    `json:"id"`
	IstatCode        string    `json:"istat_code"`
	Name             string    `json:"name"`
	Province         string    `json:"province"`
	Region           string    `json:"region"`
	Population       *int      `json:"population"`
	DelegationActive bool      `json:"delegation_active"`
	DelegationCode   string    `json:"delegation_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MunicipalityQuery filtros del listado de comuni.
type MunicipalityQuery struct {
	PageRequest
	Search           string `query:"search" validate:"max=120"`
	DelegationActive *bool  `query:"delegation_active"`
}

// MunicipalityListResponse listado paginado.
type MunicipalityListResponse struct {
	Items []MunicipalityResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// MaterialRequest alta/modificación de una tipología de material.
type MaterialRequest struct {
	Code         string           `json:"code" validate:"required,max=20"`
	Name         string           `json:"name" validate:"required,max=120"`
	Description  string           `json:"description"`
	CERCode      string           `json:"cer_code" validate:"max=12"`
	Consortium   string           `json:"consortium" validate:"required,oneof=COREPLA CORIPET RICREA CIAL COREVE"`
	AveragePrice *decimal.Decimal `json:"average_price" validate:"omitempty,gte=0"`
	Active       *bool            `json:"active"`
}

// MaterialResponse tipología de material.
type MaterialResponse struct {
	ID           string           `json:"id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	CERCode      string           `json:"cer_code"`
	Consortium   string           `json:"consortium"`
	AveragePrice *decimal.Decimal `json:"average_price"`
	Active       bool             `json:"active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// FlowRequest alta/modificación de un flujo de recogida. Límites nulos = sin restricción.
type FlowRequest struct {
	Code                 string           `json:"code" validate:"required,max=4"`
	Name                 string           `json:"name" validate:"required,max=120"`
	Description          string           `json:"description"`
	RatePerTonne         decimal.Decimal  `json:"rate_per_tonne" validate:"gte=0"`
	MaxTracers           *decimal.Decimal `json:"max_tracers" validate:"omitempty,gte=0,lte=100"`
	MaxForeignFraction   *decimal.Decimal `json:"max_foreign_fraction" validate:"omitempty,gte=0,lte=100"`
	MinConformingPlastic *decimal.Decimal `json:"min_conforming_plastic" validate:"omitempty,gte=0,lte=100"`
	Active               *bool            `json:"active"`
}

// FlowResponse flujo de recogida.
type FlowResponse struct {
	ID                   string           `json:"id"`
	Code                 string           `json:"code"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	RatePerTonne         decimal.Decimal  `json:"rate_per_tonne"`
	MaxTracers           *decimal.Decimal `json:"max_tracers"`
	MaxForeignFraction   *decimal.Decimal `json:"max_foreign_fraction"`
	MinConformingPlastic *decimal.Decimal `json:"min_conforming_plastic"`
	Active               bool             `json:"active"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

package entity

import "time"

// Municipality comune que confiere material a la planta (identificado por código ISTAT).
type Municipality struct {
	ID               string
	IstatCode        string
	Name             string
	Province         string
	Region           string
	Population       *int
	DelegationActive bool // delega ANCI-COREPLA activa
	DelegationCode   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

package api

import (
	"task-manager/internal/config"
	"task-manager/internal/repository/memory"
	"task-manager/internal/serializer"
)

// NewFromConfig builds an API over a fresh store with file handling taken from cfg
func NewFromConfig(cfg *config.Config) API {
	s := serializer.New(serializer.Options{
		FileMode:      cfg.FileMode(),
		SkipMalformed: cfg.SkipMalformed(),
		Timeout:       cfg.Application.Timeout,
	})
	return New(memory.New(), s, Options{ResyncIDs: cfg.Load.ResyncIDs})
}

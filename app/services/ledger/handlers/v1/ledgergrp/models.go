package ledgergrp

import "github.com/powledger/powledger/foundation/validate"

type newBlock struct {
	Data string `json:"data" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (nb newBlock) Validate() error {
	if err := validate.Check(nb); err != nil {
		return err
	}
	return nil
}

type deleteBlock struct {
	Proof uint64 `json:"proof" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (db deleteBlock) Validate() error {
	if err := validate.Check(db); err != nil {
		return err
	}
	return nil
}

type validity struct {
	Valid bool `json:"valid"`
}

type status struct {
	Status string `json:"status"`
}

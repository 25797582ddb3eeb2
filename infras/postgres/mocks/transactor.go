package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RunTx makes a MockTransactor execute the unit of work with a nil tx, for
// tests whose repositories are mocked.
func RunTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

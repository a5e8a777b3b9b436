package services

import "errors"

var (
	ErrIdentificationFailed = errors.New("identification failed")

	ErrStorage           = errors.New("storage failure")
	ErrCorruptCollection = errors.New("stored collection is corrupt")
	ErrNotLoaded         = errors.New("collection not loaded")
	ErrDuplicateID       = errors.New("animal id already in collection")
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrInvalidAnimal     = errors.New("invalid animal")

	ErrSessionConflict   = errors.New("capture session busy")
	ErrNoActiveSession   = errors.New("no active capture session")
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrSessionCancelled  = errors.New("capture session cancelled")
	ErrEmptyImage        = errors.New("image payload is empty")
)

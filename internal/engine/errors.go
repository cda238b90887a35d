package engine

import "errors"

var (
	// ErrEngineNotFound indicates the engine executable was not found on PATH.
	ErrEngineNotFound = errors.New("documentation engine not found")
	// ErrEngineFailed indicates the engine exited unsuccessfully.
	ErrEngineFailed = errors.New("documentation engine failed")
	// ErrConfigWriteFailed indicates the engine configuration file could not be staged.
	ErrConfigWriteFailed = errors.New("engine config write failed")
)

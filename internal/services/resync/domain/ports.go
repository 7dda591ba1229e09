package domain

import "context"

// RunnerPort executes one full sync pass
type RunnerPort interface {
	Run(ctx context.Context) (Report, error)
}

// StatusPort reports the engine's condition for the club in scope
type StatusPort interface {
	Status(ctx context.Context) Status
}

package babysnark

import "errors"

var (
	// ErrInvalidInstance is returned when an instance, witness, statement or
	// CRS has an inconsistent shape. It is raised before any cryptographic
	// work begins.
	ErrInvalidInstance = errors.New("babysnark: invalid instance")

	// ErrUnsatisfiedWitness is returned by the prover when the witness does
	// not satisfy the square span program. No proof is emitted.
	ErrUnsatisfiedWitness = errors.New("babysnark: witness does not satisfy the program")

	// ErrDegreeBound is returned when an internal degree bound on the
	// quotient or witness polynomial is violated.
	ErrDegreeBound = errors.New("babysnark: degree bound violated")
)

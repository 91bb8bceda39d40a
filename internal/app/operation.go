package app

// Operation tracks a CLI operation that may change remote state.
// Operations are created in memory with ID=0. Only mutating commands
// persist them (giving them an auto-increment ID from the database).
type Operation struct {
	ID         int64
	UUID       string
	Operation  string
	Parameters string
	Status     string // "success" or "error"
	Result     string
}

// NewOperation creates a new in-memory operation tagged with uuid.
func NewOperation(uuid, operation, parameters string) *Operation {
	return &Operation{
		UUID:       uuid,
		Operation:  operation,
		Parameters: parameters,
		Status:     "success",
	}
}

// Persisted returns true if this operation has been saved to the database.
func (op *Operation) Persisted() bool {
	return op.ID != 0
}

// Finish records the outcome: result on success, the error text otherwise.
func (op *Operation) Finish(result string, err error) {
	if err != nil {
		op.Status = "error"
		op.Result = err.Error()
		return
	}
	op.Status = "success"
	op.Result = result
}

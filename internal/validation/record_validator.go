package validation

import (
	"strconv"
	"strings"

	"task-manager/internal/domain"
)

// RecordValidator checks the values that come in from prompts and task files
type RecordValidator struct {
	validator *Validator
}

// NewRecordValidator creates a new record validator
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{
		validator: NewValidator(),
	}
}

// ParseID parses an id typed at a prompt or read from a file. Only the first
// token counts, so "3 extra" reads as 3.
func (rv *RecordValidator) ParseID(field, input string) (int64, error) {
	token := rv.validator.FirstToken(input)
	if token == "" {
		ve := NewValidationError()
		ve.AddRequiredError(field)
		return 0, ve
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		ve := NewValidationError()
		ve.AddInvalidFormatError(field, token, "an integer")
		return 0, ve
	}
	return id, nil
}

// ParseChoice parses a menu selection or priority choice. Range checking is left
// to the caller because each menu treats out-of-range values differently.
func (rv *RecordValidator) ParseChoice(input string) (int, error) {
	id, err := rv.ParseID("choice", input)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// ParsePriorityCode converts a persisted priority ordinal into a Priority
func (rv *RecordValidator) ParsePriorityCode(input string) (domain.Priority, error) {
	token := strings.TrimSpace(input)
	code, err := strconv.Atoi(token)
	if err != nil {
		ve := NewValidationError()
		ve.AddInvalidFormatError("priority", token, "1, 2 or 3")
		return 0, ve
	}
	priority, err := domain.ParsePriority(code)
	if err != nil {
		ve := NewValidationError()
		ve.AddInvalidRangeError("priority", code, "must be 1 (Low), 2 (Medium) or 3 (High)")
		return 0, ve
	}
	return priority, nil
}

// ValidateFilePath checks a save or load target. It does not touch the filesystem.
func (rv *RecordValidator) ValidateFilePath(path string) error {
	ve := NewValidationError()
	if !rv.validator.IsNonEmptyString(path) {
		ve.AddRequiredError("filename")
		return ve
	}
	if rv.validator.HasControlCharacters(path) {
		ve.AddInvalidValueError("filename", path, "must not contain control characters")
		return ve
	}
	return nil
}

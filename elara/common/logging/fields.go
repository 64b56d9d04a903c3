package logging

const (
	FieldComponent = "component"

	FieldAddress = "address"
	FieldPath    = "path"
)

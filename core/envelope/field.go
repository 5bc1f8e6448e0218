package envelope

// Field names the element field that holds a snippet's payload text. Call
// sites ask the model for differently named but otherwise identical
// envelopes, so the extractor takes the name as a parameter.
type Field string

const (
	FieldSnippet         Field = "snippet"
	FieldMethodContent   Field = "methodContent"
	FieldContent         Field = "content"
	FieldVariableContent Field = "variableContent"
)

// CustomField returns a Field for a payload name not covered by the
// predefined constants.
func CustomField(name string) Field {
	return Field(name)
}

// Name returns the JSON key of the field.
func (f Field) Name() string {
	return string(f)
}

func (f Field) String() string {
	return string(f)
}

const (
	importsKey     = "imports"
	descriptionKey = "description"
)

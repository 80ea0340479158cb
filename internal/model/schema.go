package model

// ValueType is the inferred type of a flag or argument value.
type ValueType string

const (
	// ValueString is the default value type for flags and arguments.
	ValueString ValueType = "string"
	// ValueBoolean is used for flags without a value slot.
	ValueBoolean ValueType = "boolean"
	// ValueNumber is used when the source default was produced by a known
	// numeric parser reference (parseInt, parseFloat, Number).
	ValueNumber ValueType = "number"
)

// OptionDescriptor is one parsed flag declaration from an imperative
// option-builder chain.
type OptionDescriptor struct {
	Key             string
	ValueType       ValueType
	Required        bool
	HasDefault      bool
	DefaultLiteral  string
	Description     string
	IsNegated       bool
	IsOptionalValue bool
}

// ArgumentDescriptor is one parsed positional-argument declaration.
type ArgumentDescriptor struct {
	Name        string
	Description string
	Required    bool
}

// SchemaField is one synthesized declarative validation field. Fields are
// derived 1:1 from descriptors, positional arguments first.
type SchemaField struct {
	Key  string
	Expr string
}

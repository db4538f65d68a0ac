package domain

// SizeOption — элемент справочника размеров (например "42", "M").
type SizeOption struct {
	ID    int64
	Value string
}

// ColorOption — элемент справочника цветов.
type ColorOption struct {
	ID    int64
	Value string
	Label string
}

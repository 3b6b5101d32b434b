package domain

// Access flags shared by classes and fields.
const (
	AccPublic     uint16 = 0x0001
	AccPrivate    uint16 = 0x0002
	AccProtected  uint16 = 0x0004
	AccStatic     uint16 = 0x0008
	AccFinal      uint16 = 0x0010
	AccInterface  uint16 = 0x0200
	AccAbstract   uint16 = 0x0400
	AccSynthetic  uint16 = 0x1000
	AccAnnotation uint16 = 0x2000
	AccEnum       uint16 = 0x4000
)

// Annotation is a runtime-visible annotation recorded in a class file.
type Annotation struct {
	// Type is the fully-qualified name of the annotation type.
	Type     string
	Elements []AnnotationElement
}

// AnnotationElement is a single name=value pair of an annotation.
type AnnotationElement struct {
	Name  string
	Value ElementValue
}

// Element returns the value of the named element and whether it was recorded.
// Elements left at their declared default are not recorded in class files.
func (a Annotation) Element(name string) (ElementValue, bool) {
	for _, e := range a.Elements {
		if e.Name == name {
			return e.Value, true
		}
	}
	return ElementValue{}, false
}

// ElementValue is a decoded annotation element value. Tag follows the class
// file encoding: B C D F I J S Z s e c @ [.
type ElementValue struct {
	Tag byte
	// Const holds int32, int64, float32, float64, bool or string constants.
	Const any
	// EnumType and EnumConst hold enum constants (tag 'e').
	EnumType  string
	EnumConst string
	// Class holds a class literal descriptor (tag 'c').
	Class      string
	Annotation *Annotation
	Array      []ElementValue
}

// Bool returns the value as a boolean constant.
func (v ElementValue) Bool() (bool, bool) {
	b, ok := v.Const.(bool)
	return b, ok
}

// String returns the value as a string constant.
func (v ElementValue) String() (string, bool) {
	s, ok := v.Const.(string)
	return s, ok
}

// Field is a declared field of a compiled type.
type Field struct {
	Access      uint16
	Name        string
	Descriptor  string
	Annotations []Annotation
}

// Annotation returns the field annotation of the given type.
func (f Field) Annotation(typeName string) (Annotation, bool) {
	return findAnnotation(f.Annotations, typeName)
}

// IsStatic reports whether the field is static.
func (f Field) IsStatic() bool {
	return f.Access&AccStatic != 0
}

func findAnnotation(anns []Annotation, typeName string) (Annotation, bool) {
	for _, a := range anns {
		if a.Type == typeName {
			return a, true
		}
	}
	return Annotation{}, false
}

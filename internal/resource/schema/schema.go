// Package schema is the declarative validation contract shared by the HTTP
// delivery layer and the action layer: the same rules guard both the form
// UX and the upstream call (defense in depth).
package schema

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps field name to one human-readable message. It implements
// error; the message is the joined list of all field errors.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range sortedFields(e) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into FieldErrors when possible.
func AsFieldErrors(err error) (FieldErrors, bool) {
	fieldErrs, ok := err.(FieldErrors)
	return fieldErrs, ok
}

// Validator validates payload structs against their declared tags. One
// instance is shared by every resource schema.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds the shared validator. Field names in errors follow
// the json tag, matching what the form actually submitted.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate checks payload and returns nil or FieldErrors. No side effects,
// no network.
func (s *Validator) Validate(payload any) error {
	err := s.v.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"payload": "format de données invalide"}
	}

	fieldErrs := FieldErrors{}
	for _, fe := range verrs {
		fieldErrs[fe.Field()] = message(fe)
	}
	return fieldErrs
}

// message translates one validator failure into the console's user-facing
// French message.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "ce champ est obligatoire"
	case "email":
		return "adresse e-mail invalide"
	case "min":
		return fmt.Sprintf("doit contenir au moins %s caractères", fe.Param())
	case "max":
		return fmt.Sprintf("ne doit pas dépasser %s caractères", fe.Param())
	case "oneof":
		return fmt.Sprintf("valeur invalide, attendu : %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "URL invalide"
	case "gte":
		return fmt.Sprintf("doit être supérieur ou égal à %s", fe.Param())
	default:
		return "valeur invalide"
	}
}

// Upload is one file submitted with a form, before it is encoded for the
// upstream backend.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadRule declares the file constraints of an upload-carrying resource.
type UploadRule struct {
	MaxBytes     int64
	AllowedTypes []string
	Required     bool
	MaxCount     int
}

// Check validates uploads under field against the rule, returning nil or
// FieldErrors keyed by field.
func (r UploadRule) Check(field string, uploads []Upload) error {
	if len(uploads) == 0 {
		if r.Required {
			return FieldErrors{field: "au moins un fichier est requis"}
		}
		return nil
	}
	if r.MaxCount > 0 && len(uploads) > r.MaxCount {
		return FieldErrors{field: fmt.Sprintf("au maximum %d fichiers autorisés", r.MaxCount)}
	}

	for _, u := range uploads {
		if r.MaxBytes > 0 && u.Size > r.MaxBytes {
			return FieldErrors{field: fmt.Sprintf("le fichier %q dépasse la taille maximale de %d Mo", u.Filename, r.MaxBytes/(1<<20))}
		}
		if len(r.AllowedTypes) > 0 && !allowed(r.AllowedTypes, u.ContentType) {
			return FieldErrors{field: fmt.Sprintf("le type %q n'est pas accepté", u.ContentType)}
		}
	}
	return nil
}

func allowed(types []string, contentType string) bool {
	for _, t := range types {
		if t == contentType {
			return true
		}
	}
	return false
}

func sortedFields(e FieldErrors) []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

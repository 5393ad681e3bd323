package tableau

import (
	"fmt"

	"github.com/crillab/gophertableau/tf"
	"github.com/go-playground/validator/v10"
)

// A Problem is a named set of premises to build a tableau from, the form in
// which premise sets are stored in files.
type Problem struct {
	Name        string   `yaml:"name,omitempty" validate:"max=200"`
	Description string   `yaml:"description,omitempty" validate:"max=2000"`
	Premises    []string `yaml:"premises" validate:"required,min=1,dive,required"`
}

// problemValidate checks the shape of loaded problems.
var problemValidate *validator.Validate

func init() {
	problemValidate = validator.New()
}

// Validate checks the problem's shape and the syntax of every premise. A
// nil return guarantees Tableau will succeed.
func (pb *Problem) Validate() error {
	if err := problemValidate.Struct(pb); err != nil {
		return fmt.Errorf("invalid problem: %v", err)
	}
	for i, p := range pb.Premises {
		if err := tf.Wellformed(p); err != nil {
			return fmt.Errorf("premise %d: %v", i+1, err)
		}
	}
	return nil
}

// Tableau validates the problem and builds the initial tree from its
// premises.
func (pb *Problem) Tableau() (*Tableau, error) {
	if err := pb.Validate(); err != nil {
		return nil, err
	}
	t := New(tf.Parse(pb.Premises[0]))
	for _, p := range pb.Premises[1:] {
		t.AddPremise(tf.Parse(p))
	}
	return t, nil
}

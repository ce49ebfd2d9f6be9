package wizard

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"quotedesk/backend/internal/domain/quote"
)

const (
	TotalSteps   = 12
	StepWebsite  = 1
	StepClient   = 2
	FirstService = 3
	LastService  = 11
	StepInvoice  = TotalSteps
)

const (
	websiteAlert = "Please enter the website name and domain before continuing."
	clientAlert  = "Please complete all required client details before continuing."
)

var ErrLastStep = errors.New("already on the final step")

// StepError blocks a forward transition. Alert is the single message shown
// to the user.
type StepError struct {
	Step    int
	Missing []string
	Alert   string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d incomplete: %s", e.Step, strings.Join(e.Missing, ", "))
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Wizard tracks the current step of a quote being built.
type Wizard struct {
	Step    int
	Website quote.WebsiteInfo
	Client  quote.ClientInfo
}

func New() *Wizard { return &Wizard{Step: StepWebsite} }

// Next advances one step if the current step's fields are present.
func (w *Wizard) Next() error {
	if w.Step < StepWebsite {
		w.Step = StepWebsite
	}
	if w.Step >= TotalSteps {
		return ErrLastStep
	}
	if err := CheckStep(w.Step, w.Website, w.Client); err != nil {
		return err
	}
	w.Step++
	return nil
}

// Back moves one step back. It never fails.
func (w *Wizard) Back() {
	if w.Step > StepWebsite {
		w.Step--
	}
}

func (w *Wizard) CanGoNext() bool { return w.Step < TotalSteps }

// IsServiceStep reports whether step is one of the service selection steps.
func IsServiceStep(step int) bool { return step >= FirstService && step <= LastService }

// CheckStep validates the fields owned by step. Steps other than the first
// two have nothing to check.
func CheckStep(step int, website quote.WebsiteInfo, client quote.ClientInfo) error {
	var (
		target any
		alert  string
	)
	switch step {
	case StepWebsite:
		target, alert = website, websiteAlert
	case StepClient:
		target, alert = client, clientAlert
	default:
		return nil
	}

	err := validatorInstance().Struct(target)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return &StepError{Step: step, Missing: missing, Alert: alert}
}

package services

import (
	"ecycle/internal/domain"
	applog "ecycle/internal/log"
)

// WizardStep is one stop in the linear sell flow.
type WizardStep int

const (
	StepDeviceDetails WizardStep = iota
	StepPhotosAndValue
	StepContactDetails
	StepComplete
)

func (s WizardStep) String() string {
	switch s {
	case StepDeviceDetails:
		return "DeviceDetails"
	case StepPhotosAndValue:
		return "PhotosAndValue"
	case StepContactDetails:
		return "ContactDetails"
	case StepComplete:
		return "Complete"
	}
	return "Unknown"
}

// Wizard sequences the sell flow. Next stops at the terminal step, Back stops
// at the first; neither validates the form, required-field nudging lives in
// the UI.
type Wizard struct{ step WizardStep }

func (w *Wizard) Step() WizardStep { return w.step }

func (w *Wizard) Next() WizardStep {
	if w.step < StepComplete {
		w.step++
	}
	return w.step
}

func (w *Wizard) Back() WizardStep {
	if w.step > StepDeviceDetails {
		w.step--
	}
	return w.step
}

// Submitter is the named extension point for the real trade-in intake. The
// default implementation only logs the collected form.
type Submitter interface {
	Submit(form domain.SubmissionForm)
}

type LogSubmitter struct{}

func (LogSubmitter) Submit(form domain.SubmissionForm) {
	applog.Audit(nil, "sell.submit", map[string]any{
		"category":       form.Category,
		"brand":          form.Brand,
		"model":          form.Model,
		"condition":      form.Condition,
		"age":            form.Age,
		"expected_price": form.ExpectedPrice,
		"email":          form.Email,
	})
}

type SellService struct {
	Val *ValuationService
	Sub Submitter
}

func NewSellService(val *ValuationService, sub Submitter) *SellService {
	if sub == nil {
		sub = LogSubmitter{}
	}
	return &SellService{Val: val, Sub: sub}
}

// Quote recomputes the estimate for the wizard's device details.
func (s *SellService) Quote(category, condition string, age int) (int, bool) {
	return s.Val.Estimate(category, condition, age)
}

// Submit is the wizard's single side-effecting transition. The expected price
// is re-derived from the device details before handing off, so the stored
// form always carries the estimate the seller saw.
func (s *SellService) Submit(form domain.SubmissionForm) WizardStep {
	if est, ok := s.Val.Estimate(form.Category, form.Condition, form.Age); ok {
		form.ExpectedPrice = est
	}
	s.Sub.Submit(form)
	w := Wizard{step: StepContactDetails}
	return w.Next()
}

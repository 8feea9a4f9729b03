package services_test

import (
	"testing"

	"ecycle/internal/domain"
	"ecycle/internal/services"
)

type captureSubmitter struct {
	forms []domain.SubmissionForm
}

func (c *captureSubmitter) Submit(form domain.SubmissionForm) {
	c.forms = append(c.forms, form)
}

func TestWizardSequencing(t *testing.T) {
	var w services.Wizard
	if w.Step() != services.StepDeviceDetails {
		t.Fatal("wizard must start at DeviceDetails")
	}

	w.Back() // no-op at step 0
	if w.Step() != services.StepDeviceDetails {
		t.Fatal("back at the first step must be a no-op")
	}

	w.Next()
	w.Next()
	w.Next()
	if w.Step() != services.StepComplete {
		t.Fatalf("want Complete after three advances, got %s", w.Step())
	}

	w.Next() // terminal: no further advance
	if w.Step() != services.StepComplete {
		t.Fatal("next at the terminal step must be a no-op")
	}

	w.Back()
	if w.Step() != services.StepContactDetails {
		t.Fatalf("back from Complete must yield ContactDetails, got %s", w.Step())
	}
}

func TestWizardStepNames(t *testing.T) {
	want := map[services.WizardStep]string{
		services.StepDeviceDetails:  "DeviceDetails",
		services.StepPhotosAndValue: "PhotosAndValue",
		services.StepContactDetails: "ContactDetails",
		services.StepComplete:       "Complete",
	}
	for step, name := range want {
		if step.String() != name {
			t.Fatalf("step %d: want %s, got %s", step, name, step.String())
		}
	}
}

func TestSubmitSyncsExpectedPriceAndCompletes(t *testing.T) {
	rec := &captureSubmitter{}
	svc := services.NewSellService(services.NewValuationService(), rec)

	step := svc.Submit(domain.SubmissionForm{
		Category:      "laptop",
		Condition:     "good",
		Age:           1,
		ExpectedPrice: 9999, // stale client value; the derived estimate wins
		FirstName:     "Ada",
		Email:         "ada@example.com",
	})

	if step != services.StepComplete {
		t.Fatalf("submit must land on Complete, got %s", step)
	}
	if len(rec.forms) != 1 {
		t.Fatalf("want exactly one submission, got %d", len(rec.forms))
	}
	if rec.forms[0].ExpectedPrice != 240 {
		t.Fatalf("expected price must follow the estimate (240), got %d", rec.forms[0].ExpectedPrice)
	}
}

func TestQuoteAbsentUntilDeviceDetailsSet(t *testing.T) {
	svc := services.NewSellService(services.NewValuationService(), &captureSubmitter{})
	if _, ok := svc.Quote("", "", 1); ok {
		t.Fatal("quote must be absent without category and condition")
	}
	if est, ok := svc.Quote("smartphone", "excellent", 1); !ok || est != 200 {
		t.Fatalf("want 200, got %d", est)
	}
}

package handlers

import (
	"net/http"

	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/wizard"
)

type wizardRequest struct {
	Step    int               `json:"step"`
	Website quote.WebsiteInfo `json:"website"`
	Client  quote.ClientInfo  `json:"client"`
}

type wizardResponse struct {
	Step          int  `json:"step"`
	TotalSteps    int  `json:"totalSteps"`
	CanGoNext     bool `json:"canGoNext"`
	IsServiceStep bool `json:"isServiceStep"`
}

func (req wizardRequest) wizard() *wizard.Wizard {
	wz := wizard.New()
	if req.Step > 0 {
		wz.Step = min(req.Step, wizard.TotalSteps)
	}
	wz.Website = req.Website
	wz.Client = req.Client
	return wz
}

func stepResponse(wz *wizard.Wizard) wizardResponse {
	return wizardResponse{
		Step:          wz.Step,
		TotalSteps:    wizard.TotalSteps,
		CanGoNext:     wz.CanGoNext(),
		IsServiceStep: wizard.IsServiceStep(wz.Step),
	}
}

func (h *Handlers) WizardAdvance(w http.ResponseWriter, r *http.Request) {
	var req wizardRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	wz := req.wizard()
	if err := wz.Next(); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stepResponse(wz))
}

func (h *Handlers) WizardBack(w http.ResponseWriter, r *http.Request) {
	var req wizardRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	wz := req.wizard()
	wz.Back()
	writeJSON(w, r, http.StatusOK, stepResponse(wz))
}

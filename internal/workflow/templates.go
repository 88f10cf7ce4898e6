package workflow

import "github.com/shenikar/safety_response_coordinator/internal/models"

// DefaultTemplates возвращает встроенные процедуры реагирования.
// VIOLENCE, PANIC и SUSPICIOUS_BEHAVIOR своих шаблонов не имеют и получают шаблон SOS через fallback реестра.
func DefaultTemplates() map[models.IncidentCategory][]models.WorkflowStepTemplate {
	return map[models.IncidentCategory][]models.WorkflowStepTemplate{
		models.CategorySOS: {
			{
				ID:          "sos-contact",
				Title:       "Establish contact with passenger",
				Description: "Call the passenger and confirm they are safe to talk.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityCritical,
					TimeLimitMinutes: 2,
					Tips: []string{
						"Use a calm, steady voice",
						"Ask yes/no questions if the passenger cannot speak freely",
					},
					Warnings:        []string{"Do not alert the driver if the passenger signals danger"},
					ExpectedOutcome: "Passenger status confirmed",
					NextSteps:       []string{"sos-location"},
				},
			},
			{
				ID:          "sos-location",
				Title:       "Verify live location",
				Description: "Cross-check GPS position against the planned route.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityCritical,
					TimeLimitMinutes: 3,
					Prerequisites:    []string{"sos-contact"},
					Tips:             []string{"Compare heading and speed with the route"},
					Warnings:         []string{"GPS accuracy above 50m needs manual confirmation"},
					ExpectedOutcome:  "Vehicle position confirmed",
				},
			},
			{
				ID:          "sos-authorities",
				Title:       "Notify emergency services",
				Description: "Share incident details and location with local authorities.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityHigh,
					TimeLimitMinutes: 5,
					Prerequisites:    []string{"sos-location"},
					Tips:             []string{"Provide vehicle plate and color"},
					Warnings:         []string{"Record the reference number of the report"},
					ExpectedOutcome:  "Authorities dispatched",
				},
			},
			{
				ID:          "sos-followup",
				Title:       "Follow up and document",
				Description: "Stay on the line until responders arrive and document the outcome.",
				Guidance: models.StepGuidance{
					Priority:        models.PriorityMedium,
					Tips:            []string{"Log every contact attempt in the timeline"},
					Warnings:        []string{},
					ExpectedOutcome: "Incident report completed",
				},
			},
		},
		models.CategoryHarassment: {
			{
				ID:          "har-statement",
				Title:       "Take passenger statement",
				Description: "Record what happened in the passenger's own words.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityHigh,
					TimeLimitMinutes: 10,
					Tips:             []string{"Avoid leading questions"},
					Warnings:         []string{"Do not share the passenger's contact details"},
					ExpectedOutcome:  "Statement recorded",
				},
			},
			{
				ID:          "har-suspend",
				Title:       "Suspend driver account",
				Description: "Temporarily block the driver pending investigation.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityHigh,
					TimeLimitMinutes: 15,
					Prerequisites:    []string{"har-statement"},
					Tips:             []string{"Attach the statement to the suspension note"},
					Warnings:         []string{"Suspension must be reviewed within 24 hours"},
					ExpectedOutcome:  "Driver suspended",
				},
			},
			{
				ID:          "har-support",
				Title:       "Offer victim support",
				Description: "Provide support resources and a safe ride home if needed.",
				Guidance: models.StepGuidance{
					Priority:        models.PriorityMedium,
					Tips:            []string{"Offer a follow-up call"},
					Warnings:        []string{},
					ExpectedOutcome: "Passenger supported",
				},
			},
		},
		models.CategoryAccident: {
			{
				ID:          "acc-injuries",
				Title:       "Check for injuries",
				Description: "Confirm whether anyone needs medical assistance.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityCritical,
					TimeLimitMinutes: 2,
					Tips:             []string{"Ask both passenger and driver"},
					Warnings:         []string{"Never advise moving an injured person"},
					ExpectedOutcome:  "Injury status known",
				},
			},
			{
				ID:          "acc-ems",
				Title:       "Dispatch emergency medical services",
				Description: "Request an ambulance when injuries are reported.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityCritical,
					TimeLimitMinutes: 5,
					Prerequisites:    []string{"acc-injuries"},
					Tips:             []string{"Share exact location and number of people involved"},
					Warnings:         []string{},
					ExpectedOutcome:  "EMS en route",
				},
			},
			{
				ID:          "acc-evidence",
				Title:       "Collect evidence",
				Description: "Gather photos, dashcam footage and witness contacts.",
				Guidance: models.StepGuidance{
					Priority:        models.PriorityMedium,
					Tips:            []string{"Request dashcam footage before it is overwritten"},
					Warnings:        []string{},
					ExpectedOutcome: "Evidence archived",
				},
			},
			{
				ID:          "acc-insurance",
				Title:       "Open insurance claim",
				Description: "File the claim with the fleet insurer.",
				Guidance: models.StepGuidance{
					Priority:        models.PriorityLow,
					Prerequisites:   []string{"acc-evidence"},
					Tips:            []string{"Reference the police report number"},
					Warnings:        []string{},
					ExpectedOutcome: "Claim opened",
				},
			},
		},
		models.CategoryMedical: {
			{
				ID:          "med-assess",
				Title:       "Assess symptoms",
				Description: "Ask about symptoms and known conditions.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityCritical,
					TimeLimitMinutes: 2,
					Tips:             []string{"Ask about allergies and medication"},
					Warnings:         []string{"Do not give medical advice beyond first aid instructions"},
					ExpectedOutcome:  "Symptoms recorded",
				},
			},
			{
				ID:          "med-redirect",
				Title:       "Redirect to nearest hospital",
				Description: "Reroute the trip to the closest emergency room or call EMS.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityCritical,
					TimeLimitMinutes: 3,
					Prerequisites:    []string{"med-assess"},
					Tips:             []string{"Notify the hospital of the arrival time"},
					Warnings:         []string{},
					ExpectedOutcome:  "Passenger heading to care",
				},
			},
		},
		models.CategoryRouteDeviation: {
			{
				ID:          "dev-confirm",
				Title:       "Confirm deviation",
				Description: "Compare the live position with the planned route.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityHigh,
					TimeLimitMinutes: 3,
					Tips:             []string{"Check for road closures or detours"},
					Warnings:         []string{},
					ExpectedOutcome:  "Deviation confirmed or dismissed",
				},
			},
			{
				ID:          "dev-contact",
				Title:       "Contact driver and passenger",
				Description: "Ask both parties to explain the route change.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityHigh,
					TimeLimitMinutes: 5,
					Prerequisites:    []string{"dev-confirm"},
					Tips:             []string{"Contact the passenger first"},
					Warnings:         []string{"Escalate immediately if the passenger does not answer"},
					ExpectedOutcome:  "Reason for deviation known",
				},
			},
		},
		models.CategoryFraud: {
			{
				ID:          "fr-review",
				Title:       "Review transaction",
				Description: "Inspect payment and trip records flagged by the fraud rule.",
				Guidance: models.StepGuidance{
					Priority:         models.PriorityMedium,
					TimeLimitMinutes: 30,
					Tips:             []string{"Compare with the account's payment history"},
					Warnings:         []string{},
					ExpectedOutcome:  "Transaction classified",
				},
			},
			{
				ID:          "fr-freeze",
				Title:       "Freeze account",
				Description: "Block payouts for the affected account.",
				Guidance: models.StepGuidance{
					Priority:        models.PriorityMedium,
					Prerequisites:   []string{"fr-review"},
					Tips:            []string{},
					Warnings:        []string{"Freezing notifies the account holder"},
					ExpectedOutcome: "Account frozen",
				},
			},
		},
	}
}

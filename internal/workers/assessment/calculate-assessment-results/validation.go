// internal/workers/assessment/calculate-assessment-results/validation.go
package calculateassessmentresults

import "readiness-workers/internal/common/validation"

// inputSchema checks the job variables before they are decoded into Input.
var inputSchema = validation.MustCompileSchema(`{
	"type": "object",
	"required": ["assessmentData"],
	"properties": {
		"assessmentData": {
			"type": "object",
			"required": ["responses"],
			"properties": {
				"sessionId": {"type": "string"},
				"company": {
					"type": "object",
					"properties": {
						"companyName": {"type": "string", "maxLength": 255},
						"industry": {"type": "string"},
						"companySize": {"type": "string"},
						"region": {"type": "string"},
						"assessmentType": {"enum": ["", "free", "paid"]}
					}
				},
				"responses": {
					"type": "object",
					"additionalProperties": {"type": "integer", "minimum": 0, "maximum": 5}
				}
			}
		}
	}
}`)

// ValidateInput returns the schema result for raw job variables.
func ValidateInput(variables string) (*validation.ValidationResult, error) {
	return inputSchema.ValidateJSON(variables)
}

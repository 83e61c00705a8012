package payrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

func validCalculateRequest() CalculateBatchRequest {
	return CalculateBatchRequest{
		BatchNumber:         "PR-2024-03",
		PeriodStart:         "2024-03-01",
		PeriodEnd:           "2024-03-31",
		PayDate:             "2024-04-05",
		IncludeAllEmployees: true,
	}
}

func TestCalculateBatchRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validCalculateRequest().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*CalculateBatchRequest)
		field  string
	}{
		{"missing batch number", func(r *CalculateBatchRequest) { r.BatchNumber = "" }, "batch_number"},
		{"bad period start", func(r *CalculateBatchRequest) { r.PeriodStart = "March 1st" }, "period_start"},
		{"start not before end", func(r *CalculateBatchRequest) { r.PeriodStart = "2024-03-31" }, "period_start"},
		{"pay date inside period", func(r *CalculateBatchRequest) { r.PayDate = "2024-03-25" }, "pay_date"},
		{
			"no selection without include-all",
			func(r *CalculateBatchRequest) { r.IncludeAllEmployees = false },
			"selected_employee_ids",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCalculateRequest()
			c.mutate(&req)
			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}

	t.Run("explicit selection without include-all", func(t *testing.T) {
		req := validCalculateRequest()
		req.IncludeAllEmployees = false
		req.SelectedEmployeeIDs = []string{"emp-1", "emp-2"}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdatePaymentRequestValidate(t *testing.T) {
	assert.Error(t, UpdatePaymentRequest{}.Validate(), "an empty payment update must be rejected")

	sent := true
	assert.NoError(t, UpdatePaymentRequest{PayslipSent: &sent}.Validate())

	ref := "MPESA-XY123"
	assert.NoError(t, UpdatePaymentRequest{PaymentReference: &ref}.Validate())
}

func TestPreviewRequestValidate(t *testing.T) {
	valid := PreviewRequest{EmployeeID: "emp-1", PeriodStart: "2024-03-01", PeriodEnd: "2024-03-31"}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.EmployeeID = ""
	assert.Error(t, bad.Validate())

	bad = valid
	bad.PeriodEnd = "2024-03-32"
	assert.Error(t, bad.Validate())
}

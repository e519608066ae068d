package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/app/repositories/memstore"
	"github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/knowledge"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
	"github.com/eduadvisor/backoffice/internal/pkg/auth"
	"github.com/eduadvisor/backoffice/internal/pkg/llm"
)

const adminSecret = "test-admin-secret"

type fixture struct {
	stores      *repositories.Stores
	credentials services.CredentialService
	inquiries   services.InquiryService
	reports     services.ReportService
	calls       services.CallService
	admissions  services.AdmissionService
	admin       services.AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	stores := memstore.New()
	credentials := services.NewCredentialService(stores.Consultants)
	require.NoError(t, credentials.Load(ctx, []models.Consultant{
		{UserID: "ASHA", Name: "Asha Sen", Password: "asha-pw"},
		{UserID: "RAVI", Name: "Ravi Das", Password: "ravi-pw"},
	}))

	return &fixture{
		stores:      stores,
		credentials: credentials,
		inquiries:   services.NewInquiryService(stores.Inquiries),
		reports:     services.NewReportService(stores.Reports, stores.Calls, credentials),
		calls:       services.NewCallService(stores.Calls, credentials),
		admissions:  services.NewAdmissionService(stores.Admissions, credentials),
		admin:       services.NewAdminService(auth.NewSharedSecret(adminSecret, ""), stores),
	}
}

func sampleReport() services.ReportInput {
	return services.ReportInput{
		StudentName:   "Student A",
		ContactNumber: "9876543210",
		InterestScope: "ACTIVELY INTERESTED",
	}
}

func TestCredentialService(t *testing.T) {
	ctx := context.Background()

	t.Run("AddLoginRenameDelete", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.credentials.Add(ctx, "T1", "Test", "p1"))

		name, ok := f.credentials.Verify("T1", "p1")
		assert.True(t, ok)
		assert.Equal(t, "Test", name)

		_, ok = f.credentials.Verify("T1", "wrong")
		assert.False(t, ok)

		require.NoError(t, f.credentials.Rename(ctx, "T1", models.ConsultantRename{NewUserID: "T2"}))

		_, ok = f.credentials.Verify("T1", "p1")
		assert.False(t, ok)
		name, ok = f.credentials.Verify("T2", "p1")
		assert.True(t, ok)
		assert.Equal(t, "Test", name)

		require.NoError(t, f.credentials.Remove(ctx, "T2"))
		for _, c := range f.credentials.List() {
			assert.NotEqual(t, "T2", c.UserID)
		}
	})

	t.Run("ChangesAreWrittenThrough", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.credentials.Add(ctx, "T1", "Test", "p1"))
		require.NoError(t, f.credentials.Rename(ctx, "T1", models.ConsultantRename{NewUserID: "T2", NewPassword: "p2"}))

		reloaded := services.NewCredentialService(f.stores.Consultants)
		require.NoError(t, reloaded.Load(ctx, nil))

		name, ok := reloaded.Verify("T2", "p2")
		assert.True(t, ok)
		assert.Equal(t, "Test", name)
	})

	t.Run("SeedIgnoredWhenStoreHasRoster", func(t *testing.T) {
		f := newFixture(t)
		reloaded := services.NewCredentialService(f.stores.Consultants)
		require.NoError(t, reloaded.Load(ctx, []models.Consultant{{UserID: "NEW", Name: "New", Password: "x"}}))

		_, found := reloaded.LookupName("NEW")
		assert.False(t, found)
		assert.Len(t, reloaded.List(), 2)
	})

	t.Run("Conflicts", func(t *testing.T) {
		f := newFixture(t)

		err := f.credentials.Add(ctx, "ASHA", "Someone", "x")
		assert.ErrorIs(t, err, apperrors.ErrConsultantExists)

		err = f.credentials.Rename(ctx, "ASHA", models.ConsultantRename{NewUserID: "RAVI"})
		assert.ErrorIs(t, err, apperrors.ErrConsultantExists)

		err = f.credentials.Rename(ctx, "NOBODY", models.ConsultantRename{NewPassword: "x"})
		assert.ErrorIs(t, err, apperrors.ErrConsultantNotFound)

		err = f.credentials.Remove(ctx, "NOBODY")
		assert.ErrorIs(t, err, apperrors.ErrConsultantNotFound)

		err = f.credentials.Rename(ctx, "ASHA", models.ConsultantRename{})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("NameNeverChanges", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.credentials.Rename(ctx, "ASHA", models.ConsultantRename{NewUserID: "ASHA2", NewPassword: "new"}))

		name, ok := f.credentials.LookupName("ASHA2")
		assert.True(t, ok)
		assert.Equal(t, "Asha Sen", name)
	})
}

func TestReportService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("LogsSuccessfulCall", func(t *testing.T) {
		f := newFixture(t)

		before, err := f.calls.ForConsultant(ctx, "ASHA")
		require.NoError(t, err)

		report, err := f.reports.Create(ctx, "ASHA", sampleReport())
		require.NoError(t, err)
		assert.Equal(t, "Asha Sen", report.ConsultantName)
		assert.NotEmpty(t, report.ID)

		after, err := f.calls.ForConsultant(ctx, "ASHA")
		require.NoError(t, err)
		assert.Equal(t, before.Stats.Total+1, after.Stats.Total)
		assert.Equal(t, before.Stats.Successful+1, after.Stats.Successful)
		assert.Equal(t, before.Stats.Failed, after.Stats.Failed)
		assert.Equal(t, before.Stats.Attempted, after.Stats.Attempted)
	})

	t.Run("CallLogFailureKeepsReport", func(t *testing.T) {
		f := newFixture(t)
		f.stores.Calls.(*memstore.CallLogStore).FailCreate = errors.New("disk full")

		report, err := f.reports.Create(ctx, "ASHA", sampleReport())
		require.NoError(t, err)

		stored, err := f.reports.ListForConsultant(ctx, "ASHA")
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, report.ID, stored[0].ID)
	})

	t.Run("UnknownConsultant", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reports.Create(ctx, "NOBODY", sampleReport())
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("InvalidScope", func(t *testing.T) {
		f := newFixture(t)
		in := sampleReport()
		in.InterestScope = "MAYBE"

		_, err := f.reports.Create(ctx, "ASHA", in)
		require.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Contains(t, err.Error(), "MAYBE")
		assert.Contains(t, err.Error(), "NOT INTERESTED")
	})

	t.Run("GroupedByConsultantName", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.reports.Create(ctx, "ASHA", sampleReport())
		require.NoError(t, err)
		_, err = f.reports.Create(ctx, "RAVI", sampleReport())
		require.NoError(t, err)

		all, grouped, err := f.reports.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Len(t, grouped["Asha Sen"], 1)
		assert.Len(t, grouped["Ravi Das"], 1)
	})
}

func TestCallService(t *testing.T) {
	ctx := context.Background()

	t.Run("StatsPartitionByType", func(t *testing.T) {
		f := newFixture(t)
		for _, ct := range []string{"attempted", "successful", "failed"} {
			_, err := f.calls.Log(ctx, services.CallInput{ConsultantID: "ASHA", CallType: ct, StudentName: "S"})
			require.NoError(t, err)
		}

		got, err := f.calls.ForConsultant(ctx, "ASHA")
		require.NoError(t, err)
		assert.Equal(t, models.CallStats{Total: 3, Successful: 1, Failed: 1, Attempted: 1}, got.Stats)
		assert.Len(t, got.Calls, 3)
	})

	t.Run("DefaultsToAttempted", func(t *testing.T) {
		f := newFixture(t)
		call, err := f.calls.Log(ctx, services.CallInput{ConsultantID: "ASHA"})
		require.NoError(t, err)
		assert.Equal(t, models.CallTypeAttempted, call.CallType)
		assert.Equal(t, "Asha Sen", call.ConsultantName)
	})

	t.Run("RejectsUnknownConsultantAndType", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.calls.Log(ctx, services.CallInput{ConsultantID: "NOBODY", CallType: "failed"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

		_, err = f.calls.Log(ctx, services.CallInput{ConsultantID: "ASHA", CallType: "missed"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("AllStats", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.calls.Log(ctx, services.CallInput{ConsultantID: "ASHA", CallType: "failed"})
		require.NoError(t, err)
		_, err = f.calls.Log(ctx, services.CallInput{ConsultantID: "RAVI", CallType: "successful"})
		require.NoError(t, err)
		_, err = f.calls.Log(ctx, services.CallInput{ConsultantID: "RAVI", CallType: "successful"})
		require.NoError(t, err)

		all, err := f.calls.AllStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, all.Overall.Total)
		require.Contains(t, all.ByConsultant, "RAVI")
		assert.Equal(t, "Ravi Das", all.ByConsultant["RAVI"].ConsultantName)
		assert.Equal(t, 2, all.ByConsultant["RAVI"].Successful)
		assert.Equal(t, 1, all.ByConsultant["ASHA"].Failed)
	})
}

func TestInquiryService(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdateTouchesOnlyGivenFields", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.inquiries.Create(ctx, &models.StudentInquiry{
			Name: "Priya", Phone: "123", Email: "p@example.com", Course: "BCA",
		})
		require.NoError(t, err)
		assert.Equal(t, models.InquiryStatusNew, created.Status)

		msg := "call after 5pm"
		updated, err := f.inquiries.Update(ctx, created.ID, models.InquiryPatch{Message: &msg})
		require.NoError(t, err)

		assert.Equal(t, msg, updated.Message)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Phone, updated.Phone)
		assert.Equal(t, created.Email, updated.Email)
		assert.Equal(t, created.Course, updated.Course)
		assert.Equal(t, created.Status, updated.Status)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("RejectedStatusLeavesRecord", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.inquiries.Create(ctx, &models.StudentInquiry{Name: "Priya", Phone: "123"})
		require.NoError(t, err)

		err = f.inquiries.UpdateStatus(ctx, created.ID, "bogus")
		require.ErrorIs(t, err, apperrors.ErrBadRequest)

		got, err := f.inquiries.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InquiryStatusNew, got.Status)

		require.NoError(t, f.inquiries.UpdateStatus(ctx, created.ID, "contacted"))
		got, err = f.inquiries.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InquiryStatusContacted, got.Status)
	})

	t.Run("MissingIDs", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.inquiries.Get(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.ErrorIs(t, f.inquiries.Delete(ctx, "missing"), apperrors.ErrResourceNotFound)
		assert.ErrorIs(t, f.inquiries.UpdateStatus(ctx, "missing", "closed"), apperrors.ErrResourceNotFound)
	})

	t.Run("RequiresNameAndPhone", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.inquiries.Create(ctx, &models.StudentInquiry{Name: "Priya"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestAdmissionService(t *testing.T) {
	ctx := context.Background()

	t.Run("ResolvesNameAndDefaultsStatus", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.admissions.Create(ctx, models.Admission{
			StudentName: "Kiran", Course: "B.Tech", College: "NIT", ConsultantID: "RAVI", PayoutAmount: 50000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ravi Das", a.ConsultantName)
		assert.Equal(t, models.PayoutNotCredited, a.PayoutStatus)

		mine, err := f.admissions.ListForConsultant(ctx, "RAVI")
		require.NoError(t, err)
		assert.Len(t, mine, 1)
	})

	t.Run("UnknownConsultantNeedsName", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.admissions.Create(ctx, models.Admission{StudentName: "Kiran", ConsultantID: "GONE"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)

		a, err := f.admissions.Create(ctx, models.Admission{StudentName: "Kiran", ConsultantID: "GONE", ConsultantName: "Former Staff"})
		require.NoError(t, err)
		assert.Equal(t, "Former Staff", a.ConsultantName)
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		f := newFixture(t)
		a, err := f.admissions.Create(ctx, models.Admission{
			StudentName: "Kiran", Course: "B.Tech", College: "NIT", ConsultantID: "RAVI", PayoutAmount: 50000,
		})
		require.NoError(t, err)

		amount := 75000.0
		status := models.PayoutReflected
		updated, err := f.admissions.Update(ctx, a.ID, models.AdmissionPatch{PayoutAmount: &amount, PayoutStatus: &status})
		require.NoError(t, err)
		assert.Equal(t, 75000.0, updated.PayoutAmount)
		assert.Equal(t, models.PayoutReflected, updated.PayoutStatus)
		assert.Equal(t, "B.Tech", updated.Course)
		assert.Equal(t, "NIT", updated.College)

		_, err = f.admissions.Update(ctx, a.ID, models.AdmissionPatch{})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)

		_, err = f.admissions.Update(ctx, "missing", models.AdmissionPatch{PayoutAmount: &amount})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestAdminService(t *testing.T) {
	ctx := context.Background()

	populate := func(t *testing.T, f *fixture) {
		t.Helper()
		_, err := f.inquiries.Create(ctx, &models.StudentInquiry{Name: "Priya", Phone: "1"})
		require.NoError(t, err)
		_, err = f.reports.Create(ctx, "ASHA", sampleReport())
		require.NoError(t, err)
		_, err = f.reports.Create(ctx, "RAVI", sampleReport())
		require.NoError(t, err)
		_, err = f.admissions.Create(ctx, models.Admission{StudentName: "K", ConsultantID: "ASHA"})
		require.NoError(t, err)
	}

	counts := func(t *testing.T, f *fixture) [4]int {
		t.Helper()
		q, err := f.stores.Inquiries.List(ctx)
		require.NoError(t, err)
		r, err := f.stores.Reports.List(ctx, models.RecordFilter{})
		require.NoError(t, err)
		c, err := f.stores.Calls.List(ctx, models.RecordFilter{})
		require.NoError(t, err)
		a, err := f.stores.Admissions.List(ctx, models.RecordFilter{})
		require.NoError(t, err)
		return [4]int{len(q), len(r), len(c), len(a)}
	}

	t.Run("WrongPasswordDeletesNothing", func(t *testing.T) {
		f := newFixture(t)
		populate(t, f)
		before := counts(t, f)

		_, err := f.admin.BulkDelete(ctx, services.BulkDeleteRequest{Password: "wrong", Kind: "all"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAdminPassword)
		assert.Equal(t, before, counts(t, f))
	})

	t.Run("AllForOneConsultant", func(t *testing.T) {
		f := newFixture(t)
		populate(t, f)

		deleted, err := f.admin.BulkDelete(ctx, services.BulkDeleteRequest{
			Password: adminSecret, Kind: "all", ConsultantID: "ASHA",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"reports": 1, "calls": 1, "queries": 0, "admissions": 1}, deleted)
		assert.Equal(t, [4]int{1, 1, 1, 0}, counts(t, f))
	})

	t.Run("DateRange", func(t *testing.T) {
		now := time.Now().UTC()
		today := now.Format("2006-01-02")
		tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
		f := newFixture(t)
		populate(t, f)

		deleted, err := f.admin.BulkDelete(ctx, services.BulkDeleteRequest{
			Password: adminSecret, Kind: "reports", StartDate: "2020-01-01", EndDate: "2020-12-31",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted["reports"])

		deleted, err = f.admin.BulkDelete(ctx, services.BulkDeleteRequest{
			Password: adminSecret, Kind: "queries", StartDate: today, EndDate: tomorrow,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted["queries"])
	})

	t.Run("BadInput", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.admin.BulkDelete(ctx, services.BulkDeleteRequest{Password: adminSecret, Kind: "students"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)

		_, err = f.admin.BulkDelete(ctx, services.BulkDeleteRequest{Password: adminSecret, Kind: "calls", StartDate: "01/02/2024"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)

		_, err = f.admin.BulkDelete(ctx, services.BulkDeleteRequest{
			Password: adminSecret, Kind: "calls", StartDate: "2024-02-02", EndDate: "2024-02-01",
		})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("DeleteConsultantCalls", func(t *testing.T) {
		f := newFixture(t)
		populate(t, f)

		_, err := f.admin.DeleteConsultantCalls(ctx, "wrong", "ASHA")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAdminPassword)

		n, err := f.admin.DeleteConsultantCalls(ctx, adminSecret, "ASHA")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := f.calls.ForConsultant(ctx, "ASHA")
		require.NoError(t, err)
		assert.Zero(t, got.Stats.Total)
	})
}

type stubCompleter struct {
	reply     string
	err       error
	sessionID string
	prompt    string
}

func (s *stubCompleter) Complete(_ context.Context, sessionID, _, user string) (string, error) {
	s.sessionID = sessionID
	s.prompt = user
	return s.reply, s.err
}

func TestAdvisorService(t *testing.T) {
	ctx := context.Background()

	t.Run("Chat", func(t *testing.T) {
		stub := &stubCompleter{reply: "Try NIT Durgapur."}
		reply, err := services.NewAdvisorService(stub).Chat(ctx, "s-1", "JEE 92 percentile?")
		require.NoError(t, err)
		assert.Equal(t, "Try NIT Durgapur.", reply)
		assert.Equal(t, "s-1", stub.sessionID)
	})

	t.Run("ChatFailureIsGeneric", func(t *testing.T) {
		stub := &stubCompleter{err: errors.New("dial tcp: connection refused")}
		_, err := services.NewAdvisorService(stub).Chat(ctx, "s-1", "hello")
		require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
		assert.Equal(t, "Failed to get response", apperrors.Message(err))
	})

	t.Run("MissingKey", func(t *testing.T) {
		stub := &stubCompleter{err: llm.ErrMissingAPIKey}
		_, err := services.NewAdvisorService(stub).Analyze(ctx, knowledge.StudentProfile{Subjects: "PCM", Marks: 80})
		require.ErrorIs(t, err, apperrors.ErrUpstreamFailure)
		assert.Equal(t, "LLM API key not configured", apperrors.Message(err))
	})

	t.Run("AnalyzeUsesMarksSession", func(t *testing.T) {
		stub := &stubCompleter{reply: "analysis"}
		out, err := services.NewAdvisorService(stub).Analyze(ctx, knowledge.StudentProfile{Subjects: "PCB", Marks: 85.5})
		require.NoError(t, err)
		assert.Equal(t, "analysis", out)
		assert.Equal(t, "analysis-85.5", stub.sessionID)
		assert.Contains(t, stub.prompt, "- Category: General")
	})

	t.Run("AnalyzeValidatesInput", func(t *testing.T) {
		svc := services.NewAdvisorService(&stubCompleter{})
		_, err := svc.Analyze(ctx, knowledge.StudentProfile{Marks: 50})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		_, err = svc.Analyze(ctx, knowledge.StudentProfile{Subjects: "PCM", Marks: 120})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestExportService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.calls.Log(ctx, services.CallInput{ConsultantID: "ASHA", CallType: "failed"})
	require.NoError(t, err)

	svc := services.NewExportService(f.stores)

	data, name, err := svc.Export(ctx, "calls")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Regexp(t, `^calls_\d{4}-\d{2}-\d{2}\.xlsx$`, name)

	_, _, err = svc.Export(ctx, "students")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

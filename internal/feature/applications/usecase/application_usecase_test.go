package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanneat_backend/internal/feature/applications/domain/entity"
	"cleanneat_backend/internal/shared/actor"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/notes"
	"cleanneat_backend/internal/shared/outcome"
)

type mockApplicationRepository struct {
	CreateFunc   func(ctx context.Context, app *entity.Application) error
	FindByIDFunc func(ctx context.Context, id string) (*entity.Application, error)
	SaveFunc     func(ctx context.Context, app *entity.Application) error
	saved        []entity.Application
}

func (m *mockApplicationRepository) Create(ctx context.Context, app *entity.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, app)
	}
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrApplicationNotFound
}

func (m *mockApplicationRepository) List(context.Context) ([]entity.Application, error) {
	return nil, nil
}

func (m *mockApplicationRepository) Save(ctx context.Context, app *entity.Application) error {
	m.saved = append(m.saved, *app)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, app)
	}
	return nil
}

type mockSender struct {
	err   error
	calls int
}

func (m *mockSender) SendApplicationConfirmation(context.Context, string, string, string) error {
	m.calls++
	return m.err
}

type fakeDirectory map[string]string

func (d fakeDirectory) DisplayName(_ context.Context, id string) (string, error) {
	if name, ok := d[id]; ok {
		return name, nil
	}
	return "", actor.ErrUnknown
}

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Record(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

var now = time.Date(2026, 9, 14, 8, 30, 0, 0, time.UTC)

func newTestUsecase(repo ApplicationRepository, sender ConfirmationSender) (*applicationUsecase, *recordingAudit) {
	rec := &recordingAudit{}
	uc := NewApplicationUsecase(repo, sender, fakeDirectory{"u1": "Priya"}, rec)
	uc.newID = func() (string, error) { return "n4n0", nil }
	uc.now = func() time.Time { return now }
	return uc, rec
}

func boolPtr(b bool) *bool { return &b }

func validApplication() CreateApplicationInput {
	return CreateApplicationInput{
		FullName:                         "Chris Doe",
		Email:                            "chris@example.com",
		Phone:                            "07700900111",
		LocationPostcode:                 "M1 1AA",
		RoleType:                         []string{"part_time"},
		Availability:                     []string{"weekdays", "evenings"},
		ExperienceSummary:                "Two years of domestic cleaning",
		RightToWorkUK:                    boolPtr(true),
		DBSStatus:                        "need_dbs",
		ReferencesContactDetails:         "Ref: 01234 567890",
		CVFileURL:                        "https://cdn.example.com/uploads/cv.pdf",
		ConsentRecruitmentDataProcessing: boolPtr(true),
	}
}

func found(app entity.Application) func(context.Context, string) (*entity.Application, error) {
	return func(context.Context, string) (*entity.Application, error) {
		cp := app
		return &cp, nil
	}
}

func TestApplicationUsecase_Create(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *CreateApplicationInput)
		sendErr   error
		createErr error
		wantKind  outcome.Kind
		wantSends int
	}{
		{name: "success", wantKind: outcome.KindOK, wantSends: 1},
		{name: "mail failure still succeeds", sendErr: errors.New("timeout"), wantKind: outcome.KindOK, wantSends: 1},
		{name: "with id document", mutate: func(in *CreateApplicationInput) {
			id := "https://cdn.example.com/uploads/id.png"
			in.IDFileURL = &id
		}, wantKind: outcome.KindOK, wantSends: 1},
		{name: "cv url is not a url", mutate: func(in *CreateApplicationInput) { in.CVFileURL = "cv.pdf" }, wantKind: outcome.KindInvalid},
		{name: "unknown availability", mutate: func(in *CreateApplicationInput) { in.Availability = []string{"nights"} }, wantKind: outcome.KindInvalid},
		{name: "missing dbs status", mutate: func(in *CreateApplicationInput) { in.DBSStatus = "" }, wantKind: outcome.KindInvalid},
		{name: "right to work omitted", mutate: func(in *CreateApplicationInput) { in.RightToWorkUK = nil }, wantKind: outcome.KindInvalid},
		{name: "store failure", createErr: errors.New("db down"), wantKind: outcome.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *entity.Application
			repo := &mockApplicationRepository{CreateFunc: func(_ context.Context, app *entity.Application) error {
				created = app
				return tt.createErr
			}}
			sender := &mockSender{err: tt.sendErr}
			uc, _ := newTestUsecase(repo, sender)
			in := validApplication()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			res := uc.Create(context.Background(), in)

			assert.Equal(t, tt.wantKind, res.Kind())
			assert.Equal(t, tt.wantSends, sender.calls)
			if tt.wantKind == outcome.KindOK {
				id, _ := res.Value()
				assert.Equal(t, "app_n4n0", id)
				require.NotNil(t, created)
				assert.Equal(t, entity.StatusNew, created.Status)
				assert.Equal(t, now, created.CreatedAt)
			}
		})
	}
}

func TestApplicationUsecase_Triage(t *testing.T) {
	stored := entity.Application{ID: "app_1", Email: "chris@example.com", Status: entity.StatusNew,
		InternalNotes: []notes.Note{{Text: "phoned", WriterName: "Priya"}}}

	t.Run("mark read", func(t *testing.T) {
		repo := &mockApplicationRepository{FindByIDFunc: found(stored)}
		uc, rec := newTestUsecase(repo, &mockSender{})

		res := uc.MarkRead(context.Background(), "u1", "app_1")

		require.True(t, res.IsOK())
		require.Len(t, repo.saved, 1)
		assert.Equal(t, entity.StatusRead, repo.saved[0].Status)
		require.Len(t, rec.entries, 1)
		assert.Equal(t, "mark_application_read", rec.entries[0].Action)
		assert.Equal(t, "Marked application app_1 (chris@example.com) as read", rec.entries[0].Details)
	})

	t.Run("status", func(t *testing.T) {
		repo := &mockApplicationRepository{FindByIDFunc: found(stored)}
		uc, rec := newTestUsecase(repo, &mockSender{})

		res := uc.UpdateStatus(context.Background(), "u1", "app_1", UpdateStatusInput{Status: entity.StatusContacted})

		got, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, entity.StatusContacted, got.Status)
		assert.Equal(t, "application", rec.entries[0].EntityType)
	})

	t.Run("add note", func(t *testing.T) {
		repo := &mockApplicationRepository{FindByIDFunc: found(stored)}
		uc, _ := newTestUsecase(repo, &mockSender{})

		res := uc.AddNote(context.Background(), "u1", "app_1", AddNoteInput{Note: "Interview booked"})

		got, ok := res.Value()
		require.True(t, ok)
		require.Len(t, got.InternalNotes, 2)
		assert.Equal(t, "Priya", got.InternalNotes[1].WriterName)
	})

	t.Run("delete note out of range", func(t *testing.T) {
		repo := &mockApplicationRepository{FindByIDFunc: found(stored)}
		uc, rec := newTestUsecase(repo, &mockSender{})

		res := uc.DeleteNote(context.Background(), "u1", "app_1", "1")

		assert.Equal(t, outcome.KindNotFound, res.Kind())
		assert.Equal(t, "Note not found", res.Message())
		assert.Empty(t, repo.saved)
		assert.Empty(t, rec.entries)
	})

	t.Run("delete note", func(t *testing.T) {
		repo := &mockApplicationRepository{FindByIDFunc: found(stored)}
		uc, rec := newTestUsecase(repo, &mockSender{})

		res := uc.DeleteNote(context.Background(), "u1", "app_1", "0")

		got, ok := res.Value()
		require.True(t, ok)
		assert.Empty(t, got.InternalNotes)
		assert.Equal(t, "Deleted note index 0 from application app_1", rec.entries[0].Details)
	})

	t.Run("missing application", func(t *testing.T) {
		uc, rec := newTestUsecase(&mockApplicationRepository{}, &mockSender{})

		res := uc.MarkRead(context.Background(), "u1", "app_missing")

		assert.Equal(t, outcome.KindNotFound, res.Kind())
		assert.Equal(t, "Application not found", res.Message())
		assert.Empty(t, rec.entries)
	})

	t.Run("save failure is internal and not audited", func(t *testing.T) {
		repo := &mockApplicationRepository{
			FindByIDFunc: found(stored),
			SaveFunc:     func(context.Context, *entity.Application) error { return errors.New("deadlock") },
		}
		uc, rec := newTestUsecase(repo, &mockSender{})

		res := uc.UpdateStatus(context.Background(), "u1", "app_1", UpdateStatusInput{Status: entity.StatusRead})

		assert.Equal(t, outcome.KindInternal, res.Kind())
		assert.Empty(t, rec.entries)
	})
}

// change がエラーを返した場合は保存も監査も行わない
func TestApplicationUsecase_UpdateChangeError(t *testing.T) {
	stored := entity.Application{ID: "app_1", Email: "chris@example.com", Status: entity.StatusNew}

	tests := []struct {
		name      string
		changeErr error
		wantKind  outcome.Kind
	}{
		{"note missing", errNoteNotFound, outcome.KindNotFound},
		{"unexpected error", errors.New("status transition rejected"), outcome.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockApplicationRepository{FindByIDFunc: found(stored)}
			uc, rec := newTestUsecase(repo, &mockSender{})

			res := uc.update(context.Background(), "u1", "app_1", "update_application_status",
				func(app *entity.Application) (string, error) {
					app.Status = entity.StatusContacted
					return "changed", tt.changeErr
				})

			require.Equal(t, tt.wantKind, res.Kind())
			assert.Empty(t, repo.saved)
			assert.Empty(t, rec.entries)
		})
	}
}

package studio

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/factory"
	"github.com/dassigner/studio/src/dassigner/gateway/client/clientmock"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
	"github.com/dassigner/studio/src/dassigner/gateway/generative/generativemock"
	"github.com/dassigner/studio/src/dassigner/internal/activitylog"
	"github.com/dassigner/studio/src/dassigner/internal/clock/clockmock"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/examples"
	"github.com/dassigner/studio/src/dassigner/internal/export/exportmock"
	"github.com/dassigner/studio/src/dassigner/internal/notifier/notifiermock"
	"github.com/dassigner/studio/src/dassigner/repository/credential/credentialmock"
	"github.com/dassigner/studio/src/dassigner/repository/project/projectmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// The model client's dependencies start a census worker at init time.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var _epoch = time.UnixMilli(1700000000000)

// harness backs the controller's collaborators with in-memory fakes built on gomock.
type harness struct {
	t    *testing.T
	ctrl *gomock.Controller
	c    Controller
	lc   *fxtest.Lifecycle

	model    *generativemock.MockGateway
	service  *generativemock.MockService
	exporter *exportmock.MockExporter

	mu        sync.Mutex
	saved     map[string]*entity.Project
	upserts   int
	upsertErr error
	pointer   string
	apiKey    string
	toasts    []entity.Toast
	ticks     int64
	initial   *entity.Project
}

func newHarness(t *testing.T, apiKey string, stored ...*entity.Project) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		t:        t,
		ctrl:     ctrl,
		lc:       fxtest.NewLifecycle(t),
		model:    generativemock.NewMockGateway(ctrl),
		service:  generativemock.NewMockService(ctrl),
		exporter: exportmock.NewMockExporter(ctrl),
		saved:    map[string]*entity.Project{},
		apiKey:   apiKey,
	}
	for _, p := range stored {
		h.saved[p.ID] = p
	}
	h.initial = entity.MostRecent(stored)

	projects := projectmock.NewMockRepository(ctrl)
	projects.EXPECT().MigrateLegacy(gomock.Any()).Return(nil, nil).AnyTimes()
	projects.EXPECT().ResolveInitial(gomock.Any()).DoAndReturn(func(context.Context) (*entity.Project, error) {
		return h.initial, nil
	}).AnyTimes()
	projects.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entity.Project) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.upsertErr != nil {
			return h.upsertErr
		}
		h.upserts++
		h.saved[p.ID] = p
		return nil
	}).AnyTimes()
	projects.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*entity.Project, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if p, ok := h.saved[id]; ok {
			return p, nil
		}
		return nil, &errors.ProjectNotFoundError{ID: id}
	}).AnyTimes()
	projects.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]*entity.Project, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		list := make([]*entity.Project, 0, len(h.saved))
		for _, p := range h.saved {
			list = append(list, p)
		}
		return list, nil
	}).AnyTimes()
	projects.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.saved, id)
		return nil
	}).AnyTimes()
	projects.EXPECT().SetCurrentID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.pointer = id
		return nil
	}).AnyTimes()

	credentials := credentialmock.NewMockRepository(ctrl)
	credentials.EXPECT().Get(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.apiKey, nil
	}).AnyTimes()
	credentials.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.apiKey = key
		return nil
	}).AnyTimes()
	credentials.EXPECT().Clear(gomock.Any()).DoAndReturn(func(context.Context) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.apiKey = ""
		return nil
	}).AnyTimes()

	h.model.EXPECT().Configure(gomock.Any(), "valid-key").Return(h.service, nil).AnyTimes()
	h.model.EXPECT().Configure(gomock.Any(), "bad-key").
		Return(nil, errors.NewServiceError("Gemini API", "API Key is not provided or is invalid.")).AnyTimes()

	clients := clientmock.NewMockGateway(ctrl)
	clients.EXPECT().Broadcast(gomock.Any(), entity.NotificationStateChanged, gomock.Any()).Return(nil).AnyTimes()
	clients.EXPECT().ClientCount().Return(1).AnyTimes()

	toasts := notifiermock.NewMockQueue(ctrl)
	toasts.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, severity entity.Severity, msg string) entity.Toast {
			h.mu.Lock()
			defer h.mu.Unlock()
			toast := entity.Toast{ID: fmt.Sprint(len(h.toasts)), Message: msg, Severity: severity}
			h.toasts = append(h.toasts, toast)
			return toast
		}).AnyTimes()
	toasts.EXPECT().List().DoAndReturn(func() []entity.Toast {
		h.mu.Lock()
		defer h.mu.Unlock()
		return append([]entity.Toast(nil), h.toasts...)
	}).AnyTimes()
	toasts.EXPECT().Dismiss(gomock.Any(), gomock.Any()).Return(true).AnyTimes()

	clk := clockmock.NewMockClock(ctrl)
	clk.EXPECT().Now().DoAndReturn(func() time.Time {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.ticks++
		return _epoch.Add(time.Duration(h.ticks) * time.Second)
	}).AnyTimes()

	catalog, err := examples.New()
	require.NoError(t, err)

	h.c = New(Params{
		Lifecycle:   h.lc,
		Projects:    projects,
		Credentials: credentials,
		Model:       h.model,
		Clients:     clients,
		Toasts:      toasts,
		Examples:    catalog,
		Exporter:    h.exporter,
		Activity:    activitylog.Nop(),
		Clock:       clk,
		Logger:      zap.NewNop().Sugar(),
		Stats:       tally.NewTestScope("testing", nil),
	})
	h.lc.RequireStart()
	t.Cleanup(h.lc.RequireStop)
	return h
}

func (h *harness) writes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.upserts
}

func (h *harness) lastToast() entity.Toast {
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(h.t, h.toasts)
	return h.toasts[len(h.toasts)-1]
}

// conversation expects one conversation whose replies are produced by reply.
func (h *harness) conversation(reply func(prompt string) (entity.DesignOutput, error)) *generativemock.MockConversation {
	conv := generativemock.NewMockConversation(h.ctrl)
	conv.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (entity.DesignOutput, error) {
		return reply(prompt)
	}).AnyTimes()
	h.service.EXPECT().CreateConversation(gomock.Any()).Return(conv, nil)
	return conv
}

func echo(prompt string) (entity.DesignOutput, error) {
	return entity.DesignOutput{HTMLCode: "<div>" + prompt + "</div>"}, nil
}

func TestInit(t *testing.T) {
	t.Run("fresh install", func(t *testing.T) {
		h := newHarness(t, "")
		s := h.c.State(context.Background())
		assert.Equal(t, entity.DefaultTitle, s.Title)
		assert.False(t, s.CredentialPresent)
		assert.Empty(t, s.History)
		assert.Equal(t, s.ProjectID, h.pointer, "the pointer of the new project is persisted")
		assert.Zero(t, h.writes(), "empty projects are never saved")
	})

	t.Run("restores the most recent project", func(t *testing.T) {
		older := factory.Project("proj-a", 1, _epoch.Add(-time.Hour))
		recent := factory.Project("proj-b", 2, _epoch)
		h := newHarness(t, "valid-key", older, recent)

		s := h.c.State(context.Background())
		assert.Equal(t, "proj-b", s.ProjectID)
		assert.Len(t, s.History, 2)
		assert.True(t, s.CredentialPresent)
		assert.Zero(t, h.writes(), "loading at startup does not rewrite the project")
	})

	t.Run("rejected stored key", func(t *testing.T) {
		h := newHarness(t, "bad-key")
		assert.False(t, h.c.State(context.Background()).CredentialPresent)
	})
}

func TestSendMessageCredentialMissing(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "")

	err := h.c.SendMessage(ctx, "a hero section")
	assert.ErrorIs(t, err, errors.CredentialMissingError)

	s := h.c.State(ctx)
	assert.True(t, s.SettingsOpen)
	assert.False(t, s.Loading)
	assert.Empty(t, s.History)
	assert.Equal(t, "API Key is not set.", h.lastToast().Message)
	assert.Equal(t, entity.SeverityError, h.lastToast().Severity)
	assert.Zero(t, h.writes())
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	h.conversation(echo)

	prompts := []string{"a hero section", "  add pricing  ", "make it dark"}
	for _, p := range prompts {
		require.NoError(t, h.c.SendMessage(ctx, p))
	}

	s := h.c.State(ctx)
	require.Len(t, s.History, 3)
	for i, p := range prompts {
		assert.Equal(t, p, s.History[i].Prompt)
	}
	assert.Equal(t, "<div>make it dark</div>", s.ActiveDesign.HTMLCode)
	assert.Equal(t, "a hero section", s.Title)
	assert.True(t, s.HasConversation)
	assert.False(t, s.Loading)
	assert.Equal(t, 3, h.writes(), "one write per committed generation")
	assert.Len(t, h.saved[s.ProjectID].History, 3)
	assert.Equal(t, s.ProjectID, h.pointer)

	assert.ErrorIs(t, h.c.SendMessage(ctx, "   "), errors.EmptyPromptError)
}

func TestSendMessageFailure(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	calls := 0
	h.conversation(func(prompt string) (entity.DesignOutput, error) {
		calls++
		if calls == 2 {
			return entity.DesignOutput{}, errors.NewServiceError("Gemini Chat Service", "Empty response received from chat service.")
		}
		return echo(prompt)
	})

	require.NoError(t, h.c.SendMessage(ctx, "first"))
	before := h.c.State(ctx)

	err := h.c.SendMessage(ctx, "second")
	require.Error(t, err)
	assert.True(t, errors.IsService(err))

	s := h.c.State(ctx)
	assert.False(t, s.Loading)
	assert.Equal(t, before.History, s.History)
	assert.Equal(t, before.ActiveDesign, s.ActiveDesign)
	assert.Equal(t, "[Gemini Chat Service] Empty response received from chat service.", h.lastToast().Message)
	assert.Equal(t, 1, h.writes())
}

func TestComponentMode(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	var sent []string
	h.conversation(func(prompt string) (entity.DesignOutput, error) {
		sent = append(sent, prompt)
		return echo(fmt.Sprint(len(sent)))
	})

	require.NoError(t, h.c.SetComponentMode(ctx, true))
	require.NoError(t, h.c.SendMessage(ctx, "a landing page"))
	assert.Equal(t, "a landing page", sent[0], "component mode is inert without an active design")

	require.NoError(t, h.c.SendMessage(ctx, "add a footer"))
	assert.Equal(t, generative.ComponentPrompt("add a footer", "<div>1</div>"), sent[1])

	s := h.c.State(ctx)
	assert.Equal(t, "add a footer", s.History[1].Prompt, "the stored prompt is the user's text")
	assert.True(t, s.IsComponentMode)
}

func TestGenerationRace(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	started := make(chan struct{})
	release := make(chan struct{})
	h.conversation(func(prompt string) (entity.DesignOutput, error) {
		close(started)
		<-release
		return echo(prompt)
	})

	done := make(chan error, 1)
	go func() { done <- h.c.SendMessage(ctx, "slow design") }()
	<-started
	assert.True(t, h.c.State(ctx).Loading)

	t.Run("a second generation is rejected", func(t *testing.T) {
		assert.ErrorIs(t, h.c.SendMessage(ctx, "another"), errors.GenerationInProgressError)
		assert.ErrorIs(t, h.c.GenerateFromNewProject(ctx, "another"), errors.GenerationInProgressError)
	})

	t.Run("a late result for a replaced project is discarded", func(t *testing.T) {
		require.NoError(t, h.c.NewProject(ctx))
		replaced := h.c.State(ctx)
		assert.False(t, replaced.Loading)

		close(release)
		assert.ErrorIs(t, <-done, errors.StaleResultError)

		s := h.c.State(ctx)
		assert.Equal(t, replaced.ProjectID, s.ProjectID)
		assert.Empty(t, s.History)
		assert.Nil(t, s.ActiveDesign)
		assert.Zero(t, h.writes())
	})
}

func TestGenerateFromNewProject(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	h.conversation(echo)
	require.NoError(t, h.c.SendMessage(ctx, "first project"))
	first := h.c.State(ctx).ProjectID

	h.conversation(echo)
	require.NoError(t, h.c.GenerateFromNewProject(ctx, "second project"))

	s := h.c.State(ctx)
	assert.NotEqual(t, first, s.ProjectID)
	require.Len(t, s.History, 1)
	assert.Equal(t, "second project", s.Title)
	assert.Len(t, h.saved, 2)
	assert.Equal(t, s.ProjectID, h.pointer)
}

func TestWriteAmplification(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	h.conversation(echo)
	require.NoError(t, h.c.SendMessage(ctx, "one"))
	require.NoError(t, h.c.SendMessage(ctx, "two"))
	require.Equal(t, 2, h.writes())

	// Presentation-only transitions never write.
	require.NoError(t, h.c.SetPanelOpen(ctx, true))
	require.NoError(t, h.c.SetSettingsOpen(ctx, true))
	require.NoError(t, h.c.SetSettingsOpen(ctx, false))
	h.c.DismissToast(ctx, "0")
	_ = h.c.State(ctx)
	_, err := h.c.ExportHTML(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, h.writes())

	// Restoring the design that is already active changes nothing persisted.
	s := h.c.State(ctx)
	require.NoError(t, h.c.RestoreVersion(ctx, s.History[1].ID))
	assert.Equal(t, 2, h.writes())

	require.NoError(t, h.c.RestoreVersion(ctx, s.History[0].ID))
	assert.Equal(t, 3, h.writes())
	require.NoError(t, h.c.RenameProject(ctx, "Landing"))
	assert.Equal(t, 4, h.writes())
	require.NoError(t, h.c.SetComponentMode(ctx, true))
	assert.Equal(t, 5, h.writes())
	require.NoError(t, h.c.SetComponentMode(ctx, true))
	assert.Equal(t, 5, h.writes())
}

func TestSaveFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key")
	h.conversation(echo)

	h.mu.Lock()
	h.upsertErr = &errors.QuotaExceededError{Key: "dassigner_projects", Size: 10, Capacity: 5}
	h.mu.Unlock()

	require.NoError(t, h.c.SendMessage(ctx, "hero"), "the in-memory state stays authoritative")
	s := h.c.State(ctx)
	assert.Len(t, s.History, 1)
	assert.Contains(t, h.lastToast().Message, "Could not save the project")
	assert.Empty(t, h.saved)

	h.mu.Lock()
	h.upsertErr = nil
	h.mu.Unlock()

	require.NoError(t, h.c.SetPanelOpen(ctx, false))
	assert.Equal(t, 1, h.writes())
	assert.Len(t, h.saved[s.ProjectID].History, 1)
}

func TestRestoreVersion(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key", factory.Project("proj-a", 3, _epoch))

	s := h.c.State(ctx)
	require.NoError(t, h.c.RestoreVersion(ctx, s.History[0].ID))
	assert.Equal(t, "<div>1</div>", h.c.State(ctx).ActiveDesign.HTMLCode)

	writes := h.writes()
	require.NoError(t, h.c.RestoreVersion(ctx, "missing"))
	assert.Equal(t, "<div>1</div>", h.c.State(ctx).ActiveDesign.HTMLCode)
	assert.Equal(t, writes, h.writes())
}

func TestLoadProject(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key",
		factory.Project("proj-a", 1, _epoch.Add(-time.Hour)),
		factory.Project("proj-b", 2, _epoch))
	h.conversation(echo)
	require.NoError(t, h.c.SendMessage(ctx, "on b"))

	require.NoError(t, h.c.LoadProject(ctx, "proj-a"))
	s := h.c.State(ctx)
	assert.Equal(t, "proj-a", s.ProjectID)
	assert.False(t, s.HasConversation, "the conversation does not follow the project")
	assert.Equal(t, "proj-a", h.pointer)

	err := h.c.LoadProject(ctx, "proj-missing")
	_, ok := errors.NotFoundProject(err)
	assert.True(t, ok)
	assert.Equal(t, "Could not find the project to load.", h.lastToast().Message)
	assert.Equal(t, "proj-a", h.c.State(ctx).ProjectID)

	summaries, err := h.c.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "proj-a", summaries[0].ID, "loading a project makes it the most recent")
	assert.True(t, summaries[0].Active)
	assert.Equal(t, 3, summaries[1].Versions)
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "valid-key",
		factory.Project("proj-a", 1, _epoch.Add(-time.Hour)),
		factory.Project("proj-b", 1, _epoch))

	t.Run("inactive project", func(t *testing.T) {
		h.mu.Lock()
		h.saved["proj-c"] = factory.Project("proj-c", 1, _epoch.Add(-2*time.Hour))
		h.mu.Unlock()
		require.NoError(t, h.c.DeleteProject(ctx, "proj-c"))
		assert.Equal(t, "proj-b", h.c.State(ctx).ProjectID)
	})

	t.Run("active project falls back to the most recent", func(t *testing.T) {
		require.NoError(t, h.c.DeleteProject(ctx, "proj-b"))
		assert.Equal(t, "proj-a", h.c.State(ctx).ProjectID)
		assert.Equal(t, "proj-a", h.pointer)
		assert.Equal(t, "Design deleted successfully.", h.lastToast().Message)
	})

	t.Run("last project falls back to a new one", func(t *testing.T) {
		require.NoError(t, h.c.DeleteProject(ctx, "proj-a"))
		s := h.c.State(ctx)
		assert.NotEmpty(t, s.ProjectID)
		assert.Equal(t, entity.DefaultTitle, s.Title)
		assert.Empty(t, h.saved)
		assert.Equal(t, s.ProjectID, h.pointer)
	})
}

func TestLoadExample(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "")

	require.Len(t, h.c.Examples(ctx), 3)
	require.NoError(t, h.c.LoadExample(ctx, 1))

	s := h.c.State(ctx)
	require.Len(t, s.History, 1)
	assert.Equal(t, "A clean hero section for a minimalist SaaS application, light theme.", s.History[0].Prompt)
	assert.Equal(t, "A clean hero section for a minimalist Sa...", s.Title)
	assert.Equal(t, 1, h.writes(), "examples are loaded without a credential or a model call")

	assert.Error(t, h.c.LoadExample(ctx, 7))
}

func TestConvertCode(t *testing.T) {
	ctx := context.Background()

	t.Run("no active design", func(t *testing.T) {
		h := newHarness(t, "valid-key")
		require.NoError(t, h.c.ConvertCode(ctx, entity.TargetReact))
		assert.False(t, h.c.State(ctx).Converting)
		assert.Empty(t, h.c.Toasts(ctx))
		assert.ErrorIs(t, h.c.ConvertCode(ctx, "Svelte"), errors.UnsupportedTargetError)
	})

	t.Run("success and failure", func(t *testing.T) {
		h := newHarness(t, "valid-key", factory.Project("proj-a", 1, _epoch))
		h.service.EXPECT().Convert(gomock.Any(), "<div>1</div>", entity.TargetReact).Return("export default Hero", nil)
		h.service.EXPECT().Convert(gomock.Any(), "<div>1</div>", entity.TargetVue).
			Return("", errors.NewServiceError("Gemini Convert Service", "Empty converted code received."))

		require.NoError(t, h.c.ConvertCode(ctx, entity.TargetReact))
		assert.Error(t, h.c.ConvertCode(ctx, entity.TargetVue))

		s := h.c.State(ctx)
		assert.False(t, s.Converting)
		assert.Equal(t, "export default Hero", s.ConvertedCodeCache[entity.TargetReact])
		assert.Contains(t, s.ConvertedCodeCache[entity.TargetVue], "Code conversion to Vue failed.")
		assert.Equal(t, "Failed to convert to Vue.", h.lastToast().Message)
		assert.Equal(t, 2, h.writes())
	})

	t.Run("late result for a replaced design", func(t *testing.T) {
		h := newHarness(t, "valid-key", factory.Project("proj-a", 2, _epoch))
		started := make(chan struct{})
		release := make(chan struct{})
		h.service.EXPECT().Convert(gomock.Any(), "<div>2</div>", entity.TargetReact).DoAndReturn(
			func(context.Context, string, entity.ConversionTarget) (string, error) {
				close(started)
				<-release
				return "stale", nil
			})

		done := make(chan error, 1)
		go func() { done <- h.c.ConvertCode(ctx, entity.TargetReact) }()
		<-started
		assert.ErrorIs(t, h.c.ConvertCode(ctx, entity.TargetVue), errors.ConversionInProgressError)

		s := h.c.State(ctx)
		require.NoError(t, h.c.RestoreVersion(ctx, s.History[0].ID))
		close(release)
		assert.ErrorIs(t, <-done, errors.StaleResultError)

		s = h.c.State(ctx)
		assert.False(t, s.Converting)
		assert.Empty(t, s.ConvertedCodeCache)
	})
}

func TestSaveCredential(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "")
	require.NoError(t, h.c.SetSettingsOpen(ctx, true))

	require.NoError(t, h.c.SaveCredential(ctx, " valid-key "))
	s := h.c.State(ctx)
	assert.True(t, s.CredentialPresent)
	assert.False(t, s.SettingsOpen)
	assert.Equal(t, "valid-key", h.apiKey)
	assert.Equal(t, "API Key saved successfully!", h.lastToast().Message)

	err := h.c.SaveCredential(ctx, "bad-key")
	assert.True(t, errors.IsService(err))
	assert.False(t, h.c.State(ctx).CredentialPresent)
	assert.Empty(t, h.apiKey, "a rejected key is not kept")
	assert.Equal(t, "[Gemini API] API Key is not provided or is invalid.", h.lastToast().Message)

	require.NoError(t, h.c.SaveCredential(ctx, "valid-key"))
	require.NoError(t, h.c.SaveCredential(ctx, ""))
	assert.False(t, h.c.State(ctx).CredentialPresent)
	assert.Equal(t, "API Key cleared.", h.lastToast().Message)
	assert.Zero(t, h.writes())
}

func TestEnhanceAndSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("without a credential", func(t *testing.T) {
		h := newHarness(t, "")
		_, err := h.c.EnhancePrompt(ctx, "landing page")
		assert.ErrorIs(t, err, errors.CredentialMissingError)
		assert.Equal(t, "API Key is not set.", h.lastToast().Message)
		assert.False(t, h.c.State(ctx).SettingsOpen)
		assert.Equal(t, generative.DefaultPrompts, h.c.SuggestPrompts(ctx))
	})

	t.Run("with a credential", func(t *testing.T) {
		h := newHarness(t, "valid-key")
		h.service.EXPECT().Enhance(gomock.Any(), "landing page").Return("A vibrant landing page", nil)
		h.service.EXPECT().Enhance(gomock.Any(), "boom").Return("", errors.NewServiceError("Gemini Enhance Service", "Empty enhanced prompt received."))
		h.service.EXPECT().SuggestPrompts(gomock.Any()).Return([]string{"a", "b", "c", "d", "e", "f"})

		got, err := h.c.EnhancePrompt(ctx, "landing page")
		require.NoError(t, err)
		assert.Equal(t, "A vibrant landing page", got)

		_, err = h.c.EnhancePrompt(ctx, "boom")
		assert.True(t, errors.IsService(err))
		assert.Len(t, h.c.SuggestPrompts(ctx), 6)
	})
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	h := newHarness(t, "")
	_, err := h.c.ExportHTML(ctx)
	assert.ErrorIs(t, err, errors.NoActiveDesignError)
	_, err = h.c.ExportHTMLFile(ctx)
	assert.ErrorIs(t, err, errors.NoActiveDesignError)

	h = newHarness(t, "", factory.Project("proj-a", 1, _epoch))
	doc, err := h.c.ExportHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, doc, "<script src=\"https://cdn.tailwindcss.com\"></script>")
	assert.Contains(t, doc, "<div>1</div>")

	h.exporter.EXPECT().WriteFile(gomock.Any(), "<div>1</div>").Return("/tmp/dassigner-ai-design.html", nil)
	path, err := h.c.ExportHTMLFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dassigner-ai-design.html", path)
	assert.Equal(t, entity.SeverityInfo, h.lastToast().Severity)
}

func TestDiffVersions(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "", factory.Project("proj-a", 2, _epoch))
	s := h.c.State(ctx)

	diff, err := h.c.DiffVersions(ctx, s.History[0].ID, s.History[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, diff.LinesAdded)
	assert.Equal(t, 1, diff.LinesRemoved)

	_, err = h.c.DiffVersions(ctx, s.History[0].ID, "missing")
	var nf *errors.HistoryItemNotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestRenameProject(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "")

	assert.ErrorIs(t, h.c.RenameProject(ctx, "  "), errors.EmptyTitleError)
	assert.Zero(t, h.writes())

	require.NoError(t, h.c.RenameProject(ctx, "  Portfolio "))
	s := h.c.State(ctx)
	assert.Equal(t, "Portfolio", s.Title)
	assert.Equal(t, 1, h.writes(), "a renamed empty project is worth saving")
	assert.Equal(t, "Portfolio", h.saved[s.ProjectID].Title)
}

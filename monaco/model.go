package monaco

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/atweb-solid/solid-monaco/engine"
)

type phase uint8

const (
	phaseUnmounted phase = iota
	phaseInitializing
	phaseReady
)

// session is the component's mounted-lifetime state. It lives behind a
// pointer so that value copies of Model and the content-change callback all
// observe the same suppression flag and lifecycle state.
type session struct {
	phase phase

	ctx    context.Context
	cancel context.CancelFunc

	engine    engine.Engine
	editor    engine.Editor
	changeSub engine.Subscription

	// suppress is true only while the component itself is pushing an
	// external value into the editor; the reverse channel drops events
	// during that window.
	suppress bool

	initErr error
}

type engineReadyMsg struct {
	engine engine.Engine
}

type initFailedMsg struct {
	err error
}

// Model is the editor component. Create it with New, start it with Init,
// and drive it like any other Bubble Tea model.
type Model struct {
	cfg     Config
	spinner spinner.Model
	s       *session
}

// New prepares an unmounted component. The cancellation handle for the
// upcoming engine load is recorded here, before the load is in flight.
func New(cfg Config) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		cfg:     cfg,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		s: &session{
			phase:  phaseUnmounted,
			ctx:    ctx,
			cancel: cancel,
		},
	}
}

// Init mounts the component: it starts the asynchronous engine load and the
// loading spinner.
func (m Model) Init() tea.Cmd {
	s := m.s
	if s.phase != phaseUnmounted {
		return nil
	}
	s.phase = phaseInitializing

	loader := m.cfg.Loader
	loaderCfg := m.cfg.LoaderConfig
	ctx := s.ctx
	load := func() tea.Msg {
		if loader == nil {
			return initFailedMsg{err: errors.New("monaco: Config.Loader is required")}
		}
		eng, err := loader(ctx, loaderCfg)
		if err != nil {
			return initFailedMsg{err: err}
		}
		return engineReadyMsg{engine: eng}
	}
	return tea.Batch(m.spinner.Tick, load)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	s := m.s
	switch msg := msg.(type) {
	case engineReadyMsg:
		// An unmount racing the load wins; the late engine is discarded.
		if s.phase != phaseInitializing {
			return m, nil
		}
		m.mount(msg.engine)
		return m, nil

	case initFailedMsg:
		if errors.Is(msg.err, context.Canceled) {
			// Initialization was cancelled by an unmount; clean no-op.
			return m, nil
		}
		if s.phase == phaseInitializing {
			s.initErr = msg.err
			// Non-functional from here on: the loading placeholder stays.
			s.phase = phaseReady
			m.cfg.logger().Error("editor engine initialization failed", zap.Error(msg.err))
		}
		return m, nil

	case spinner.TickMsg:
		if s.editor != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if s.editor != nil {
			if kh, ok := s.editor.(interface{ HandleKey(tea.KeyMsg) }); ok {
				kh.HandleKey(msg)
			}
		}
		return m, nil
	}
	return m, nil
}

// mount runs the Ready transition: before-mount hook, editor creation,
// mounted hook, then the reverse-channel subscription.
func (m *Model) mount(eng engine.Engine) {
	s := m.s
	s.engine = eng
	if m.cfg.OnBeforeMount != nil {
		m.cfg.OnBeforeMount(eng)
	}
	m.createEditor()
	s.phase = phaseReady
	if m.cfg.OnMount != nil {
		m.cfg.OnMount(s.engine, s.editor)
	}
	s.changeSub = s.editor.OnContentChanged(m.relayChange)
}

// createEditor obtains the document model for the current (path, language,
// value) and instantiates the editor against the container.
func (m *Model) createEditor() {
	s := m.s
	mdl := m.cfg.models().GetOrCreate(s.engine, m.cfg.Value, m.cfg.Language, m.cfg.Path)
	opts := engine.Options{"automaticLayout": true}.Merge(m.cfg.Options)
	s.editor = s.engine.CreateEditor(
		engine.Container{Width: m.cfg.Width, Height: m.cfg.Height},
		mdl,
		opts,
		m.cfg.OverrideServices,
	)
	if m.cfg.Theme != "" {
		s.engine.SetTheme(m.cfg.Theme)
	}
}

// relayChange is the reverse channel: editor content changes surface
// through OnChange unless the component itself caused them.
func (m Model) relayChange(ev engine.ChangeEvent) {
	s := m.s
	if s.suppress || s.editor == nil {
		return
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(s.editor.Value(), ev)
	}
}

// Unmount tears the component down from any state. During initialization it
// cancels the in-flight load and performs no disposal; once the editor
// exists it runs, in order: the before-unmount hook, disposal of the change
// subscription, disposal of the attached document model, and disposal of the
// editor. Models cached for other paths stay alive.
func (m Model) Unmount() Model {
	s := m.s
	if s.phase == phaseUnmounted {
		return m
	}
	if s.editor == nil {
		s.cancel()
		s.phase = phaseUnmounted
		return m
	}

	if m.cfg.OnBeforeUnmount != nil {
		m.cfg.OnBeforeUnmount(s.engine, s.editor)
	}
	if s.changeSub != nil {
		s.changeSub.Dispose()
		s.changeSub = nil
	}
	if mdl := s.editor.Model(); mdl != nil {
		mdl.Dispose()
	}
	s.editor.Dispose()
	s.editor = nil
	s.engine = nil
	s.cancel()
	s.phase = phaseUnmounted
	return m
}

// Ready reports whether the editor instance is live.
func (m Model) Ready() bool { return m.s.editor != nil }

// Err returns the startup error, if initialization failed.
func (m Model) Err() error { return m.s.initErr }

// Engine returns the engine handle, or nil before mount completes.
func (m Model) Engine() engine.Engine { return m.s.engine }

// Editor returns the live editor instance, or nil before mount completes.
func (m Model) Editor() engine.Editor { return m.s.editor }

func (m Model) View() string {
	s := m.s
	if s.editor != nil {
		return m.cfg.Styles.Container.Render(s.editor.View())
	}
	label := m.cfg.Styles.Loading.Render(m.spinner.View() + " loading editor")
	if m.cfg.Width > 0 && m.cfg.Height > 0 {
		return m.cfg.Styles.Container.Render(lipgloss.Place(
			m.cfg.Width, m.cfg.Height,
			lipgloss.Center, lipgloss.Center,
			label,
		))
	}
	return m.cfg.Styles.Container.Render(label)
}

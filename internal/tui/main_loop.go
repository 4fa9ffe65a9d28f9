package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/models"
)

type mainLoopState int

const (
	stateCollections mainLoopState = iota
	stateDocuments
	stateDetail
)

var collectionTitles = map[models.Collection]string{
	models.CollectionAniList:   "AniList (аниме)",
	models.CollectionRoyalRoad: "Royal Road (веб-новеллы)",
}

// mainLoopModel drives the authorized part of the client: picking a
// collection, browsing its documents, inspecting one document, copying its
// URL, and triggering a server-side refresh.
type mainLoopModel struct {
	ctx     context.Context
	library service.ClientLibraryService

	state       mainLoopState
	collections []models.Collection
	colIdx      int

	collection models.Collection
	documents  []models.Document
	docIdx     int

	loading  bool
	updating bool
	status   string
	errMsg   string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:         ctx,
		library:     services.LibraryService,
		collections: models.Collections(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.collection = msg.collection
		m.documents = msg.items
		m.docIdx = 0
		m.state = stateDocuments
		return m, nil

	case updateDoneMsg:
		m.updating = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.documents = msg.items
		if m.docIdx >= len(m.documents) {
			m.docIdx = 0
		}
		m.status = "Коллекция обновлена"
		return m, clearStatusAfter()

	case copiedMsg:
		m.status = "Ссылка скопирована"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateCollections:
		return m.handleCollectionsKey(msg)
	case stateDocuments:
		return m.handleDocumentsKey(msg)
	case stateDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleCollectionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.colIdx > 0 {
			m.colIdx--
		}
	case "down", "j":
		if m.colIdx < len(m.collections)-1 {
			m.colIdx++
		}
	case "enter":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoadDocuments(m.collections[m.colIdx])
	}
	return m, nil
}

func (m mainLoopModel) handleDocumentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateCollections
		m.errMsg = ""
		m.status = ""
	case "up", "k":
		if m.docIdx > 0 {
			m.docIdx--
		}
	case "down", "j":
		if m.docIdx < len(m.documents)-1 {
			m.docIdx++
		}
	case "enter":
		if len(m.documents) > 0 {
			m.state = stateDetail
		}
	case "u":
		if m.updating {
			return m, nil
		}
		m.updating = true
		m.errMsg = ""
		return m, m.cmdUpdate(m.collection)
	case "c":
		if len(m.documents) > 0 {
			return m, cmdCopyURL(m.documents[m.docIdx].URL)
		}
	}
	return m, nil
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateDocuments
		m.status = ""
	case "c":
		return m, cmdCopyURL(m.documents[m.docIdx].URL)
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.state {
	case stateDocuments:
		return m.viewDocuments()
	case stateDetail:
		return m.viewDetail()
	default:
		return m.viewCollections()
	}
}

func (m mainLoopModel) viewCollections() string {
	var b strings.Builder

	for i, collection := range m.collections {
		cursor := " "
		if i == m.colIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, collectionTitles[collection]))
	}

	if m.loading {
		b.WriteString("\nЗагрузка...\n")
	}
	b.WriteString(m.footer())

	return renderPage("КОЛЛЕКЦИИ", strings.TrimRight(b.String(), "\n"), "enter: открыть │ l: сменить пользователя │ q: выход")
}

func (m mainLoopModel) viewDocuments() string {
	var b strings.Builder

	if len(m.documents) == 0 {
		b.WriteString("Коллекция пуста. Нажмите u, чтобы загрузить данные с сервера.\n")
	}

	for i, document := range m.documents {
		cursor := " "
		if i == m.docIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, document.Title))
	}

	if m.updating {
		b.WriteString("\nОбновление коллекции...\n")
	}
	b.WriteString(m.footer())

	title := fmt.Sprintf("%s — %d зап.", collectionTitles[m.collection], len(m.documents))
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: подробнее │ u: обновить │ c: копировать ссылку │ esc: назад")
}

func (m mainLoopModel) viewDetail() string {
	document := m.documents[m.docIdx]

	var b strings.Builder
	b.WriteString("Название   │ " + document.Title + "\n")
	b.WriteString("Ссылка     │ " + document.URL + "\n")
	b.WriteString("ID источн. │ " + document.SourceID + "\n")
	b.WriteString("Обновлено  │ " + document.FetchedAt.Format(time.DateTime) + "\n")

	if len(document.Payload) > 0 {
		b.WriteString("\n")
		for key, value := range document.Payload {
			b.WriteString(fmt.Sprintf("%-10s │ %v\n", key, value))
		}
	}

	b.WriteString(m.footer())

	return renderPage("ДОКУМЕНТ", strings.TrimRight(b.String(), "\n"), "c: копировать ссылку │ esc: назад")
}

func (m mainLoopModel) footer() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m mainLoopModel) cmdLoadDocuments(collection models.Collection) tea.Cmd {
	ctx := m.ctx
	library := m.library

	return func() tea.Msg {
		items, err := library.Documents(ctx, collection)
		return documentsLoadedMsg{collection: collection, items: items, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(collection models.Collection) tea.Cmd {
	ctx := m.ctx
	library := m.library

	return func() tea.Msg {
		items, err := library.Update(ctx, collection, "1")
		return updateDoneMsg{collection: collection, items: items, err: err}
	}
}

func cmdCopyURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

package main

import (
	"fmt"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/go-theft-auto/layout"
)

// item is one row of the demo list.
type item struct {
	ID   uuid.UUID
	Name string
	Size int
}

func newItem(name string, size int) item {
	// Name-based ids keep dumps reproducible.
	return item{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Name: name, Size: size}
}

// itemRow renders an item as one line of text.
type itemRow struct {
	text     string
	selected bool
}

func (r *itemRow) Bind(it item, index int, selected bool) {
	r.text = fmt.Sprintf("%4d  %-18s %6d KB  %s", index, it.Name, it.Size, it.ID.String()[:8])
	r.selected = selected
}

func (r *itemRow) Draw(ctx *layout.Context, rect layout.Rect) {
	st := ctx.Style()
	color := st.TextDisabledColor
	if r.selected {
		color = st.TextColor
	}
	y := rect.Y + (rect.H-st.CharHeight)/2
	ctx.Text(layout.Vec2{X: rect.X + layout.SpaceSM, Y: y}, r.text, color)
}

// scene is the demo UI: a toolbar, the item list and a tree of the
// current selection.
type scene struct {
	logger *charmlog.Logger
	items  *layout.SliceSequence[item]
	list   *layout.ListView[item, *itemRow]
	status string
}

func newScene(n int, logger *charmlog.Logger) *scene {
	s := &scene{logger: logger, items: layout.NewSliceSequence[item](nil)}
	for i := range n {
		s.items.Append(newItem(fmt.Sprintf("file-%04d.dat", i), (i*37)%4096+1))
	}

	s.list = layout.NewListView("items", s.items, func() *itemRow { return &itemRow{} },
		layout.WithHeight(320),
		layout.WithEmptyState("[ ]", "Drop files here"))

	s.list.OnSelectionChanged = func(sel []int) {
		s.status = fmt.Sprintf("%d selected", len(sel))
		logger.Debug("selection changed", "count", len(sel))
	}
	s.list.OnDoubleClick = func(i int) {
		s.status = "opened " + s.items.At(i).Name
		logger.Info("open", "item", s.items.At(i).Name, "id", s.items.At(i).ID)
	}
	s.list.OnReorder = func(from, to int) {
		s.status = fmt.Sprintf("moved %d to %d", from, to)
		logger.Info("reorder", "from", from, "to", to)
	}
	s.list.ValidateDrop = func(p *layout.DragPayload) layout.DropAction {
		for _, it := range p.Items {
			if _, ok := it.(string); !ok {
				return layout.DropReject
			}
		}
		return layout.DropAccept
	}
	s.list.AcceptDrop = func(p *layout.DragPayload, data layout.Sequence[item]) {
		for _, it := range p.Items {
			name := filepath.Base(it.(string))
			data.Insert(data.Len(), newItem(name, 0))
		}
		logger.Info("dropped", "files", len(p.Items), "source", p.Source)
	}
	return s
}

func (s *scene) build(ctx *layout.Context) {
	ctx.Vertical("root", layout.Padding(layout.SpaceMD))(func() {
		ctx.Flexible("toolbar")(func() {
			ctx.Label(fmt.Sprintf("Items (%d)", s.items.Len()))
			ctx.GetRect(-1, ctx.Style().RowHeight)
			if s.status != "" {
				ctx.Label(s.status)
			}
		})

		s.list.Draw(ctx)

		ctx.Tree("outline")(func() {
			ctx.Label("Selection")
			sel := s.list.Selection()
			if len(sel) == 0 {
				return
			}
			ctx.Tree("selected")(func() {
				for k, i := range sel {
					if k == 8 {
						ctx.Label(fmt.Sprintf("... %d more", len(sel)-k))
						break
					}
					ctx.Label(s.items.At(i).Name)
				}
			})
		})
	})
}

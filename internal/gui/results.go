package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/globalize/internal/audio"
	"codeberg.org/snonux/globalize/internal/processor"
)

// bannerImportance maps banner kinds onto label colours
func bannerImportance(k processor.Kind) widget.Importance {
	switch k {
	case processor.Success:
		return widget.SuccessImportance
	case processor.Warning:
		return widget.WarningImportance
	case processor.Error:
		return widget.DangerImportance
	default:
		return widget.HighImportance
	}
}

func bannerLabel(b processor.Banner) *widget.Label {
	l := widget.NewLabel(b.Message)
	l.Wrapping = fyne.TextWrapWord
	l.Importance = bannerImportance(b.Kind)
	return l
}

// resultObjects renders banners first, then one card per section
func resultObjects(r *processor.Result) []fyne.CanvasObject {
	var objs []fyne.CanvasObject
	for _, b := range r.Banners {
		objs = append(objs, bannerLabel(b))
	}

	for _, s := range r.Sections {
		body := container.NewVBox()
		if s.Text != "" {
			text := widget.NewLabel(s.Text)
			text.Wrapping = fyne.TextWrapWord
			body.Add(text)
		}
		for _, b := range s.Banners {
			body.Add(bannerLabel(b))
		}
		if s.Audio != nil {
			body.Add(widget.NewLabel("♪ audio ready"))
		}
		objs = append(objs, widget.NewCard(s.Title(), "", body))
	}
	return objs
}

// clipsOf returns the clips of r with the title of their section
func clipsOf(r *processor.Result) ([]*audio.Clip, []string) {
	var (
		clips  []*audio.Clip
		labels []string
	)
	for _, s := range r.Sections {
		if s.Audio == nil {
			continue
		}
		clips = append(clips, s.Audio)
		labels = append(labels, s.Title())
	}
	return clips, labels
}

package design

import (
	"twc/utility"
)

func (cv *conversion) animation(styles []utility.Style) {
	for _, s := range styles {
		if s.Property == utility.PropAnimation {
			if s.Value == "none" {
				cv.style.Animation = ""
			} else {
				cv.style.Animation = s.Value
			}
			continue
		}

		t := cv.style.Transition
		if t == nil {
			t = &Transition{}
		}
		switch s.Property {
		case utility.PropTransitionProperty:
			t.Property = s.Value
		case utility.PropTransitionTimingFunction:
			t.Easing = s.Value
		case utility.PropTransitionDuration, utility.PropTransitionDelay:
			ms, ok := milliseconds(s)
			if !ok {
				cv.warn(s, "invalid duration")
				continue
			}
			if s.Property == utility.PropTransitionDuration {
				t.Duration = ms
			} else {
				t.Delay = ms
			}
		}
		cv.style.Transition = t
	}
}

package domain

// Preferences are owned exclusively by this client and persisted durably
// with no expiry. JSON field names match the portal's storage schema so
// exported data stays interchangeable.
type Preferences struct {
	Theme         string             `json:"theme"`
	Language      string             `json:"language"`
	Notifications NotificationPrefs  `json:"notifications"`
	Layout        LayoutPrefs        `json:"layout"`
	Accessibility AccessibilityPrefs `json:"accessibility"`
}

type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	Sound bool `json:"sound"`
}

type LayoutPrefs struct {
	Sidebar bool   `json:"sidebar"`
	Density string `json:"density"` // compact, comfortable, spacious
}

type AccessibilityPrefs struct {
	ReducedMotion bool   `json:"reducedMotion"`
	HighContrast  bool   `json:"highContrast"`
	FontSize      string `json:"fontSize"` // small, medium, large
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Language:      "en",
		Notifications: NotificationPrefs{Email: true, Push: true, Sound: true},
		Layout:        LayoutPrefs{Sidebar: true, Density: "comfortable"},
		Accessibility: AccessibilityPrefs{FontSize: "medium"},
	}
}

// PreferencesPatch is a partial update. Nil fields are left untouched; set
// fields replace their whole top-level section (shallow merge).
type PreferencesPatch struct {
	Theme         *string
	Language      *string
	Notifications *NotificationPrefs
	Layout        *LayoutPrefs
	Accessibility *AccessibilityPrefs
}

func (p Preferences) Merge(patch PreferencesPatch) Preferences {
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	if patch.Layout != nil {
		p.Layout = *patch.Layout
	}
	if patch.Accessibility != nil {
		p.Accessibility = *patch.Accessibility
	}
	return p
}

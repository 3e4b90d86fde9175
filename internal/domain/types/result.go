package types

// ExportFileName is the name transports give the exported word list.
const ExportFileName = "added_words.txt"

// File is a named byte payload delivered as a downloadable document.
type File struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// Action is a menu shortcut. Label is what the user sees, Data is what the
// transport passes back to Press.
type Action struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Result is the rendered reply to one command.
//
// Text is always set. File is set for exports, Actions for the menu.
// Failed marks replies that report an error rather than an outcome.
type Result struct {
	Text    string   `json:"text"`
	File    *File    `json:"file,omitempty"`
	Actions []Action `json:"actions,omitempty"`
	Failed  bool     `json:"failed,omitempty"`
}

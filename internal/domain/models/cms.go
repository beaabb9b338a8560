package models

// Category is one row of the client's category tree in a given language.
// Rows are delivered in depth-first tree order.
type Category struct {
	ID      int    `json:"idcat"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Public  bool   `json:"public"`
	Level   int    `json:"level"`
}

// Article is the appearance of an article under a category (a cat_art row)
// joined with its language record.
type Article struct {
	CategoryArticleID int    `json:"idcatart"`
	Title             string `json:"title"`
	Online            bool   `json:"online"`
}

// ContentValue is one stored content slot of an article language.
type ContentValue struct {
	TypeID      int    `json:"idtype"`
	Index       int    `json:"typeid"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Upload is a row of the upload table. Directory rows carry the directory
// name in FileName with DirName pointing at the parent.
type Upload struct {
	ID       int    `json:"idupl"`
	FileName string `json:"filename"`
	DirName  string `json:"dirname"`
	FileType string `json:"filetype"`
	Size     int    `json:"size"`
}

// DbfsEntry is a row of the database file system table. Directory rows have
// an empty FileName.
type DbfsEntry struct {
	ID       int    `json:"iddbfs"`
	FileName string `json:"filename"`
	DirName  string `json:"dirname"`
	MimeType string `json:"mimetype"`
	Size     int    `json:"size"`
}

package folder

import (
	"github.com/pytutor-ai/backend/internal/domain/timestamp"
	"github.com/pytutor-ai/backend/internal/id"
)

// ImportedID is the reserved identifier of the folder that receives every
// bank arriving through a share link.
const ImportedID = "imported-folder-shared"

const (
	importedName        = "📥 匯入的題庫"
	importedDescription = "來自連結分享的題庫集合"
)

// Folder groups question banks. Its ID never changes after creation.
type Folder struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	CreatedAt   timestamp.Time `json:"createdAt"`
}

// New creates a Folder with a generated ID.
func New(name, description string) *Folder {
	return &Folder{
		ID:          id.New(),
		Name:        name,
		Description: description,
		CreatedAt:   timestamp.Now(),
	}
}

// NewImported creates the reserved imported folder.
func NewImported() *Folder {
	return &Folder{
		ID:          ImportedID,
		Name:        importedName,
		Description: importedDescription,
		CreatedAt:   timestamp.Now(),
	}
}

// IsImported reports whether f is the reserved imported folder.
func (f *Folder) IsImported() bool {
	return f.ID == ImportedID
}

// Defaults returns the example folders written into an empty store.
func Defaults() []*Folder {
	now := timestamp.Now()
	return []*Folder{
		{ID: "f1", Name: "Python 基礎練習", Description: "變數、迴圈與基礎語法", CreatedAt: now},
		{ID: "f2", Name: "期中考題庫", Description: "學校期中考考古題", CreatedAt: now},
		{ID: "f3", Name: "進階演算法", Description: "資料結構與演算法挑戰", CreatedAt: now},
	}
}

package storage

import "fmt"

// Sura is a chapter of the corpus.
type Sura struct {
	ID              string `json:"_id"`
	Number          int    `json:"number"`
	NameArabic      string `json:"nameArabic"`
	NameSimple      string `json:"nameSimple"`
	NameComplex     string `json:"nameComplex"`
	NameTranslated  string `json:"nameTranslated"`
	RevelationPlace string `json:"revelationPlace"`
	RevelationOrder int    `json:"revelationOrder"`
	BismillahPre    bool   `json:"bismillahPre"`
	VerseCount      int    `json:"verseCount"`
	PageStart       int    `json:"pageStart"`
	PageEnd         int    `json:"pageEnd"`
}

// Segment is the per-word annotation of a verse.
type Segment struct {
	Ar   string `json:"ar"`
	En   string `json:"en"`
	Pos  int    `json:"pos"`
	Root string `json:"root"`
	Tl   string `json:"tl"`
}

// Verse is one aya of a sura, keyed by (Sura, Aya).
type Verse struct {
	ID       string    `json:"_id"`
	Sura     int       `json:"sura"`
	Aya      int       `json:"aya"`
	TextAr   string    `json:"textAr"`
	TextFr   string    `json:"textFr"`
	TextTl   string    `json:"textTl"`
	Segments []Segment `json:"segments"`
}

// Key returns the composite key of the verse.
func (v Verse) Key() VerseKey {
	return VerseKey{Sura: v.Sura, Aya: v.Aya}
}

// SegmentAt returns the first segment at position pos, or nil.
func (v Verse) SegmentAt(pos int) *Segment {
	for i := range v.Segments {
		if v.Segments[i].Pos == pos {
			s := v.Segments[i]
			return &s
		}
	}
	return nil
}

// Word is one row of the root index, denormalized from Verse.Segments.
type Word struct {
	ID   string `json:"_id"`
	Sura int    `json:"sura"`
	Aya  int    `json:"aya"`
	Pos  int    `json:"pos"`
	Root string `json:"root"`
}

// VerseKey identifies a verse.
type VerseKey struct {
	Sura int
	Aya  int
}

// String formats the key as "sura:aya".
func (k VerseKey) String() string {
	return fmt.Sprintf("%d:%d", k.Sura, k.Aya)
}

// Page is an offset window over an ordered result set.
type Page struct {
	Limit  int
	Offset int
}

// TextField names a searchable verse text column.
type TextField string

const (
	TextArabic TextField = "text_ar"
	TextFrench TextField = "text_fr"
)

// SuraOrder selects the sort column for chapter listings.
type SuraOrder string

const (
	OrderByNumber          SuraOrder = "number"
	OrderByRevelationOrder SuraOrder = "revelation_order"
)

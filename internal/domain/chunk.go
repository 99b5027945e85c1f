package domain

// ChunkKind tags a chunk with the record shape it was derived from, so
// downstream rendering can switch on an explicit tag instead of sniffing
// fields on the parent record.
type ChunkKind string

const (
	KindPersonal       ChunkKind = "personal"
	KindExperience     ChunkKind = "experience"
	KindResponsibility ChunkKind = "responsibility"
	KindAchievement    ChunkKind = "achievement"
	KindProject        ChunkKind = "project"
	KindTechnology     ChunkKind = "technology"
	KindHighlight      ChunkKind = "highlight"
	KindSkills         ChunkKind = "skills"
	KindEducation      ChunkKind = "education"
	KindAccomplishment ChunkKind = "accomplishment"
)

// Chunk is a small retrievable text unit derived from one Profile record or
// sub-field. Chunks are rebuilt per search call and carry no identity beyond
// the current call. Exactly one parent pointer is set, matching Kind; parents
// are read-only references into the Profile, never mutated.
type Chunk struct {
	ID      string
	Kind    ChunkKind
	Content string
	// Weight reflects how authoritative this chunk kind is for ranking,
	// roughly in [1.0, 2.0].
	Weight float64

	Experience     *Experience
	Project        *Project
	SkillGroup     *SkillGroup
	Education      *Education
	Accomplishment *Accomplishment
	Personal       *Personal
}

// Parent returns the chunk's originating record as an opaque reference,
// suitable for deduplicating chunks that share a parent.
func (c Chunk) Parent() any {
	switch {
	case c.Experience != nil:
		return c.Experience
	case c.Project != nil:
		return c.Project
	case c.SkillGroup != nil:
		return c.SkillGroup
	case c.Education != nil:
		return c.Education
	case c.Accomplishment != nil:
		return c.Accomplishment
	case c.Personal != nil:
		return c.Personal
	}
	return nil
}

// SearchResult is a chunk paired with its combined relevance score. Signal is
// the content-derived portion of the score (TF-IDF, fuzzy and keyword terms,
// excluding the static chunk weight) and decides the no-match condition.
type SearchResult struct {
	Chunk  Chunk
	Score  float64
	Signal float64
}

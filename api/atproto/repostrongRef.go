package atproto

// schema: com.atproto.repo.strongRef

// RepoStrongRef is a "com.atproto.repo.strongRef" object: a record URI pinned to one version of its content.
type RepoStrongRef struct {
	LexiconTypeID string `json:"$type,omitempty"`
	Cid           string `json:"cid"`
	Uri           string `json:"uri"`
}

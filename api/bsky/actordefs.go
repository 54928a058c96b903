package bsky

// schema: app.bsky.actor.defs

// ActorDefs_ProfileViewBasic is a "profileViewBasic" in the app.bsky.actor.defs schema.
type ActorDefs_ProfileViewBasic struct {
	Avatar      *string `json:"avatar,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	Did         string  `json:"did"`
	DisplayName *string `json:"displayName,omitempty"`
	Handle      string  `json:"handle"`
}

// ActorDefs_ProfileView is a "profileView" in the app.bsky.actor.defs schema.
type ActorDefs_ProfileView struct {
	Avatar      *string `json:"avatar,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	Description *string `json:"description,omitempty"`
	Did         string  `json:"did"`
	DisplayName *string `json:"displayName,omitempty"`
	Handle      string  `json:"handle"`
	IndexedAt   *string `json:"indexedAt,omitempty"`
}

// Basic narrows a full profile view to the fields shared with profileViewBasic.
func (p *ActorDefs_ProfileView) Basic() *ActorDefs_ProfileViewBasic {
	if p == nil {
		return nil
	}
	return &ActorDefs_ProfileViewBasic{
		Avatar:      p.Avatar,
		CreatedAt:   p.CreatedAt,
		Did:         p.Did,
		DisplayName: p.DisplayName,
		Handle:      p.Handle,
	}
}

package dto

// ListParams defines query parameters for the list index endpoints.
// When Search is set the whole collection is filtered by name and no NextToken is returned.
type ListParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
	Search    string `form:"search" binding:"max=120"`
}

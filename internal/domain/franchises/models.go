package franchises

// Franchise is the upstream league team a catalog player belongs to.
// Kept in its own package so catalog players and user-created roster
// teams never share a type.
type Franchise struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

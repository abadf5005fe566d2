package rating

// User is one member of the squad. The directory is fixed configuration;
// users are never created, mutated or deleted at runtime.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatarColor"`
}

// Directory is the ordered, closed set of known users. Operations that need
// "all users" (coverage, completeness) iterate this exact slice so members
// who have not rated yet are still represented.
type Directory []User

// DefaultDirectory returns the squad.
func DefaultDirectory() Directory {
	return Directory{
		{ID: "u1", Name: "Rayan", AvatarColor: "bg-cyan-500"},
		{ID: "u2", Name: "Saad", AvatarColor: "bg-purple-500"},
		{ID: "u3", Name: "Osama", AvatarColor: "bg-pink-500"},
		{ID: "u4", Name: "Yaman", AvatarColor: "bg-yellow-500"},
	}
}

func (d Directory) Lookup(id string) (User, bool) {
	for _, u := range d {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (d Directory) Contains(id string) bool {
	_, ok := d.Lookup(id)
	return ok
}

package models

import "github.com/Aalzard/DRUNKPENGUINS/rating"

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatarColor"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
	MinScore   int      `json:"minScore"`
	MaxScore   int      `json:"maxScore"`
	MaxTotal   int      `json:"maxTotal"`
}

func TransformUserFromDirectory(u rating.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		AvatarColor: u.AvatarColor,
	}
}

func TransformScale(s rating.Scale) CategoriesResponse {
	categories := make([]string, 0, len(s))
	for _, c := range s {
		categories = append(categories, string(c))
	}
	return CategoriesResponse{
		Categories: categories,
		MinScore:   rating.MinScore,
		MaxScore:   rating.MaxScore,
		MaxTotal:   s.MaxTotal(),
	}
}

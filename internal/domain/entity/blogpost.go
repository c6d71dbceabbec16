package entity

// BlogPost es una publicación de un diseñador.
type BlogPost struct {
	PostID   int64
	AuthorID int64
	Title    string
	Content  string
	Category string
}

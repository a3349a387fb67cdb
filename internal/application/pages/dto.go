package pages

import (
	"github.com/shopspring/decimal"

	"github.com/dummyhub/backend/internal/domain/shared"
	"github.com/dummyhub/backend/internal/domain/task"
)

// Feature is one tile of a data-driven feature grid.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href,omitempty"`
}

// StatCard is one headline figure on a page.
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HomeView is the landing page view model.
type HomeView struct {
	Headline string           `json:"headline"`
	Tagline  string           `json:"tagline"`
	Features []Feature        `json:"features"`
	Stats    []StatCard       `json:"stats"`
	State    shared.PageState `json:"state"`
}

// AboutView is the about page view model.
type AboutView struct {
	Title      string           `json:"title"`
	Paragraphs []string         `json:"paragraphs"`
	Services   []Feature        `json:"services"`
	State      shared.PageState `json:"state"`
}

// ProductCard is one product as the products page renders it.
type ProductCard struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	OriginalPrice      decimal.Decimal `json:"original_price"`
	DiscountPercentage float64         `json:"discount_percentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
}

// ProductsView is the products page view model.
type ProductsView struct {
	Products     []ProductCard    `json:"products"`
	Categories   []string         `json:"categories"`
	Query        string           `json:"query"`
	Category     string           `json:"category"`
	Total        int              `json:"total"`
	Shown        int              `json:"shown"`
	State        shared.PageState `json:"state"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// UserCard is one user as the users page renders it.
type UserCard struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
	City     string `json:"city"`
	State    string `json:"state"`
	Image    string `json:"image"`
}

// UsersView is the users page view model.
type UsersView struct {
	Users        []UserCard       `json:"users"`
	Query        string           `json:"query"`
	Total        int              `json:"total"`
	Shown        int              `json:"shown"`
	State        shared.PageState `json:"state"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// AuthorRef is a resolved (or placeholder) post author.
type AuthorRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Image    string `json:"image,omitempty"`
}

// PostCard is one post joined to its author.
type PostCard struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Tags     []string  `json:"tags"`
	Likes    int       `json:"likes"`
	Dislikes int       `json:"dislikes"`
	Views    int       `json:"views"`
	Author   AuthorRef `json:"author"`
}

// PostsView is the posts page view model.
type PostsView struct {
	Posts        []PostCard       `json:"posts"`
	Query        string           `json:"query"`
	Total        int              `json:"total"`
	Shown        int              `json:"shown"`
	State        shared.PageState `json:"state"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// TodoItem is one todo joined to its owner.
type TodoItem struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Owner     string `json:"owner"`
}

// TodosView is the todos page view model. Stats always cover the full set;
// the listing covers the filtered subsequence.
type TodosView struct {
	Todos        []TodoItem       `json:"todos"`
	Stats        task.Counts      `json:"stats"`
	Query        string           `json:"query"`
	Status       string           `json:"status"`
	State        shared.PageState `json:"state"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// QuoteCard is one quote with its favorite marker.
type QuoteCard struct {
	ID       int    `json:"id"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Favorite bool   `json:"favorite"`
}

// AuthorGroupView is one author's quotes, in source order.
type AuthorGroupView struct {
	Author string      `json:"author"`
	Quotes []QuoteCard `json:"quotes"`
}

// QuotesView is the quotes page view model.
type QuotesView struct {
	Random       *QuoteCard        `json:"random"`
	Groups       []AuthorGroupView `json:"groups"`
	Favorites    []int             `json:"favorites"`
	Query        string            `json:"query"`
	Total        int               `json:"total"`
	Shown        int               `json:"shown"`
	State        shared.PageState  `json:"state"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

// CartItem is one line of a cart.
type CartItem struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// CartCard is one cart joined to its owner, with its savings badge.
type CartCard struct {
	ID              int             `json:"id"`
	Owner           string          `json:"owner"`
	OwnerInitials   string          `json:"owner_initials"`
	Items           []CartItem      `json:"items"`
	TotalQuantity   int             `json:"total_quantity"`
	Total           decimal.Decimal `json:"total"`
	DiscountedTotal decimal.Decimal `json:"discounted_total"`
	Savings         decimal.Decimal `json:"savings"`
	SavingsPercent  decimal.Decimal `json:"savings_percent"`
}

// CartsView is the carts page view model.
type CartsView struct {
	Carts        []CartCard       `json:"carts"`
	Summary      CartSummaryView  `json:"summary"`
	State        shared.PageState `json:"state"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// CartSummaryView is the stats-card row above the cart list.
type CartSummaryView struct {
	TotalCarts   int             `json:"total_carts"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalItems   int             `json:"total_items"`
	UniqueUsers  int             `json:"unique_users"`
}

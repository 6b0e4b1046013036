package test

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"gorm.io/gorm"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", userPk, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

func NewJSONAuthRequestRaw(method string, target string, userPk string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

func Float64Pointer(f float64) *float64 {
	return &f
}

func NewRefString(data string) *string {
	return &data
}

func FakeUser(db *gorm.DB) *models.UserAccount {
	return FakeUserV2(db, "OurName", "email@example.com")
}

func FakeUserV2(db *gorm.DB, userName string, email string) *models.UserAccount {
	if email == "" {
		email = "email@example.com"
	}
	user := models.NewUserAccount(userName, email)
	db.Create(&user)
	return &user
}

// FakeLocatedUser is a user with a location and daily plans enabled.
func FakeLocatedUser(db *gorm.DB, email string) *models.UserAccount {
	user := models.NewUserAccount("Located", email)
	user.Latitude = Float64Pointer(52.52)
	user.Longitude = Float64Pointer(13.41)
	user.DailyPlansEnabled = true
	db.Create(&user)
	return &user
}

type ItemOption func(*models.WardrobeItem)

func WithColor(name, hex string) ItemOption {
	return func(i *models.WardrobeItem) {
		i.Colors = append(i.Colors, models.ItemColor{Name: name, Hex: NewRefString(hex), Primary: len(i.Colors) == 0})
	}
}

func WithMaterials(materials ...string) ItemOption {
	return func(i *models.WardrobeItem) { i.Materials = materials }
}

func WithSeasons(seasons ...models.Season) ItemOption {
	return func(i *models.WardrobeItem) { i.Seasons = seasons }
}

func WithFormality(f models.Formality) ItemOption {
	return func(i *models.WardrobeItem) { i.Formality = f }
}

func WithSub(sub string) ItemOption {
	return func(i *models.WardrobeItem) { i.Subcategory = sub }
}

func FakeItem(db *gorm.DB, owner *models.UserAccount, name string, category models.Category, opts ...ItemOption) *models.WardrobeItem {
	item := models.WardrobeItem{
		OwnerID:   owner.ID,
		Name:      name,
		Category:  category,
		Formality: models.FormalityCasual,
		Patterns:  []models.Pattern{models.PatternSolid},
	}
	for _, opt := range opts {
		opt(&item)
	}
	db.Create(&item)
	return &item
}

// FakeWardrobe stores a small casual summer wardrobe: top, bottom and shoes.
func FakeWardrobe(db *gorm.DB, owner *models.UserAccount) []models.WardrobeItem {
	top := FakeItem(db, owner, "Red T-Shirt", models.CategoryTops, WithSub("t-shirt"),
		WithColor("red", "#FF0000"), WithMaterials("cotton"), WithSeasons(models.SeasonSummer))
	bottom := FakeItem(db, owner, "Black Shorts", models.CategoryBottoms, WithSub("shorts"),
		WithColor("black", "#000000"), WithMaterials("cotton"), WithSeasons(models.SeasonSummer))
	shoes := FakeItem(db, owner, "White Sneakers", models.CategoryShoes, WithSub("sneakers"),
		WithColor("white", "#FFFFFF"))
	return []models.WardrobeItem{*top, *bottom, *shoes}
}

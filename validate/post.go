package validate

import (
	"cruise_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreatePost() fiber.Handler {
	return parseBody("inputCreatePost", func(in *model.CreatePostInput) error {
		if in.Category == "" {
			in.Category = "general"
		}
		return nil
	})
}

func CreateComment() fiber.Handler {
	return parseBody[model.CreateCommentInput]("inputCreateComment")
}

func FilterPost() fiber.Handler {
	return parseQuery[model.FilterPost]("inputFilterPost")
}

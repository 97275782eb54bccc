package handler

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/model"
	"cruise_manager/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultPostLimit = 20

func preloadComments(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func GetPosts(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("inputFilterPost").(model.FilterPost)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	limit := filterInput.Limit
	if limit == 0 {
		limit = defaultPostLimit
	}

	query := database.DB.Model(&model.Post{})
	if filterInput.Category != "" {
		query = query.Where("category = ?", filterInput.Category)
	}

	var posts model.Posts
	if err := query.Preload("Comments", preloadComments).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, posts)
}

func findPost(c *fiber.Ctx) (*model.Post, error) {
	postId, ok := c.Locals("inputId").(uint)
	if !ok {
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse postId fail"))
	}

	var post model.Post
	if err := database.DB.Preload("Comments", preloadComments).First(&post, postId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.POST_NOT_FOUND, err)
		}
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return &post, nil
}

func GetPost(c *fiber.Ctx) error {
	post, err := findPost(c)
	if post == nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func CreatePost(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePost").(model.CreatePostInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	member, status, msg, err := memberFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, status, msg, err)
	}

	post := model.Post{
		AuthorId:     member.Uid,
		AuthorName:   member.Username,
		AuthorAvatar: member.AvatarUrl,
		Title:        strings.TrimSpace(input.Title),
		Content:      input.Content,
		ImageUrl:     input.ImageUrl,
		Category:     input.Category,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	post.Comments = []model.PostComment{}
	return utils.SuccessResponse(c, fiber.StatusCreated, post)
}

// ToggleLike likes the post for the caller, or removes the like if present.
func ToggleLike(c *fiber.Ctx) error {
	postId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse postId fail"))
	}
	member, status, msg, err := memberFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, status, msg, err)
	}

	var result model.LikeResult
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id").First(&post, postId).Error; err != nil {
			return err
		}

		like := model.PostLike{PostId: postId, MemberId: member.Uid}
		res := tx.Delete(&like)
		if res.Error != nil {
			return res.Error
		}
		delta := -1
		if res.RowsAffected == 0 {
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			delta = 1
			result.Liked = true
		}

		if err := tx.Model(&model.Post{}).Where("id = ?", postId).
			Update("likes_count", gorm.Expr("GREATEST(likes_count + ?, 0)", delta)).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Select("likes_count").Where("id = ?", postId).Scan(&result.LikesCount).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.POST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func CreateComment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateComment").(model.CreateCommentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	member, status, msg, err := memberFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, status, msg, err)
	}
	post, err := findPost(c)
	if post == nil {
		return err
	}

	comment := model.PostComment{
		PostId:     post.ID,
		AuthorId:   member.Uid,
		AuthorName: member.Username,
		Content:    strings.TrimSpace(input.Content),
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, comment)
}

func deletePost(postId uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postId).Delete(&model.PostComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postId).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postId).Error
	})
}

// DeletePost lets a member remove one of their own posts.
func DeletePost(c *fiber.Ctx) error {
	member, status, msg, err := memberFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, status, msg, err)
	}
	post, err := findPost(c)
	if post == nil {
		return err
	}
	if post.AuthorId != member.Uid {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_POST_AUTHOR, errors.New("not author"))
	}

	if err := deletePost(post.ID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": post.ID})
}

func GetAllPosts(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Post{})
	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var posts model.Posts
	if err := utils.ApplyPagination(query, pagination.Limit, pagination.Page).
		Preload("Comments", preloadComments).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       posts,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func AdminDeletePost(c *fiber.Ctx) error {
	post, err := findPost(c)
	if post == nil {
		return err
	}
	if err := deletePost(post.ID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": post.ID})
}

func AdminDeleteComment(c *fiber.Ctx) error {
	commentId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse commentId fail"))
	}

	res := database.DB.Delete(&model.PostComment{}, commentId)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COMMENT_NOT_FOUND, errors.New("comment not exists"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": commentId})
}

package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/dto"
	apperrors "github.com/AhmadAyoub1/bookstore-backend-render/pkg/errors"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooks  *appbook.ListBooksUseCase
	getBook    *appbook.GetBookUseCase
	createBook *appbook.CreateBookUseCase
	updateBook *appbook.UpdateBookUseCase
	deleteBook *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooks *appbook.ListBooksUseCase,
	getBook *appbook.GetBookUseCase,
	createBook *appbook.CreateBookUseCase,
	updateBook *appbook.UpdateBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooks:  listBooks,
		getBook:    getBook,
		createBook: createBook,
		updateBook: updateBook,
		deleteBook: deleteBook,
	}
}

// List 图书列表
// @Summary      图书列表
// @Description  按分类、推荐、关键词过滤,按创建时间倒序
// @Tags         图书
// @Produce      json
// @Param        category query string false "分类(精确匹配)"
// @Param        featured query string false "只有true生效"
// @Param        search   query string false "书名/作者/分类关键词(不区分大小写)"
// @Success      200 {array}  appbook.BookView
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithCause(err))
		return
	}

	books, err := h.listBooks.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Category: q.Category,
		Featured: q.Featured,
		Search:   q.Search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, books)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} appbook.BookView
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	b, err := h.getBook.Execute(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

// Create 创建图书
// @Summary      创建图书
// @Description  title、author、price、category必填
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} appbook.BookView
// @Failure      400 {object} response.ErrorBody "Missing required fields"
// @Failure      401 {object} response.ErrorBody
// @Router       /api/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	req, err := bindBook(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.createBook.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, b)
}

// Update 全量更新图书
// @Summary      更新图书
// @Description  title、author、price、category、description、coverImage均必填
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} appbook.BookView
// @Failure      400 {object} response.ErrorBody "All fields are required (including image and description)"
// @Failure      401 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	req, err := bindBook(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.updateBook.Execute(c.Request.Context(), idParam(c, "id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      401 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.deleteBook.Execute(c.Request.Context(), idParam(c, "id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Book deleted successfully")
}

// bindBook JSON保留price/featured的原始类型,表单统一按字符串处理
func bindBook(c *gin.Context) (appbook.BookRequest, error) {
	if isJSON(c) {
		var req dto.BookRequest
		if err := bind(c, &req); err != nil {
			return appbook.BookRequest{}, err
		}
		return req.ToApp(), nil
	}

	var form dto.BookForm
	if err := bind(c, &form); err != nil {
		return appbook.BookRequest{}, err
	}
	return form.ToApp(), nil
}

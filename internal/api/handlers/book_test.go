package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"bookclub-backend/internal/api/handlers"
	apperrors "bookclub-backend/internal/errors"
	"bookclub-backend/internal/mocks"
	"bookclub-backend/internal/service"
	"bookclub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BookHandlerTestSuite defines the test suite for BookHandler
type BookHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBookServiceInterface
	handler     *handlers.BookHandler
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *BookHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBookServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBookHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/books", suite.handler.ListBooks)
	suite.http.Router.POST("/books", suite.handler.CreateBook)
	suite.http.Router.GET("/books/:id", suite.handler.GetBook)
	suite.http.Router.PUT("/books/:id", suite.handler.UpdateBook)
	suite.http.Router.DELETE("/books/:id", suite.handler.DeleteBook)
}

// TearDownTest cleans up after each test
func (suite *BookHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListBooks tests listing books
func (suite *BookHandlerTestSuite) TestListBooks() {
	books := []service.BookResponse{
		{ID: uuid.New(), Title: "데미안", Author: "헤르만 헤세", Genres: []string{"소설"}, AddedBy: "독서가"},
		{ID: uuid.New(), Title: "1984", Author: "조지 오웰", Genres: []string{}, AddedBy: "Unknown"},
	}

	suite.mockService.EXPECT().
		ListBooks().
		Return(books, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/books", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.BookResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "데미안", response[0].Title)
	assert.Equal(suite.T(), "Unknown", response[1].AddedBy)
}

// TestListBooksServiceError tests the 500 path
func (suite *BookHandlerTestSuite) TestListBooksServiceError() {
	suite.mockService.EXPECT().
		ListBooks().
		Return(nil, errors.New("database connection failed")).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/books", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Internal server error")
}

// TestCreateBook tests creating a book
func (suite *BookHandlerTestSuite) TestCreateBook() {
	body := map[string]interface{}{
		"title":          "데미안",
		"author":         "헤르만 헤세",
		"registeredDate": "2024-03-15",
		"genres":         []string{"소설", "고전"},
	}
	created := &service.BookResponse{
		ID:             uuid.New(),
		Title:          "데미안",
		Author:         "헤르만 헤세",
		RegisteredDate: "2024-03-15",
		Genres:         []string{"소설", "고전"},
		AddedBy:        "Unknown",
	}

	suite.mockService.EXPECT().
		CreateBook(gomock.Any()).
		DoAndReturn(func(req *service.CreateBookRequest) (*service.BookResponse, error) {
			assert.Equal(suite.T(), "데미안", req.Title)
			assert.Equal(suite.T(), []string{"소설", "고전"}, req.Genres)
			return created, nil
		}).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/books", body)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.BookResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), []string{"소설", "고전"}, response.Genres)
}

// TestCreateBookValidationError tests the 400 path for an invalid date
func (suite *BookHandlerTestSuite) TestCreateBookValidationError() {
	body := map[string]interface{}{
		"title":          "데미안",
		"author":         "헤르만 헤세",
		"registeredDate": "15-03-2024",
	}

	suite.mockService.EXPECT().
		CreateBook(gomock.Any()).
		Return(nil, apperrors.NewValidationError("registeredDate", "must be a date in YYYY-MM-DD format")).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPost, "/books", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "registeredDate")
}

// TestGetBook tests getting a book by ID
func (suite *BookHandlerTestSuite) TestGetBook() {
	bookID := uuid.New()
	book := &service.BookResponse{
		ID:     bookID,
		Title:  "데미안",
		Author: "헤르만 헤세",
	}

	suite.mockService.EXPECT().
		GetBookByID(bookID).
		Return(book, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/books/"+bookID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BookResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), bookID, response.ID)
}

// TestGetBookInvalidID tests the 400 path for a malformed UUID
func (suite *BookHandlerTestSuite) TestGetBookInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/books/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid book ID")
}

// TestGetBookNotFound tests the 404 path
func (suite *BookHandlerTestSuite) TestGetBookNotFound() {
	bookID := uuid.New()

	suite.mockService.EXPECT().
		GetBookByID(bookID).
		Return(nil, apperrors.ErrBookNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, "/books/"+bookID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "book not found")
}

// TestUpdateBook tests updating a book
func (suite *BookHandlerTestSuite) TestUpdateBook() {
	bookID := uuid.New()
	body := map[string]interface{}{
		"title":  "수레바퀴 아래서",
		"author": "헤르만 헤세",
		"genres": []string{"고전"},
	}
	updated := &service.BookResponse{
		ID:     bookID,
		Title:  "수레바퀴 아래서",
		Author: "헤르만 헤세",
		Genres: []string{"고전"},
	}

	suite.mockService.EXPECT().
		UpdateBook(bookID, gomock.Any()).
		Return(updated, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPut, "/books/"+bookID.String(), body)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.BookResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "수레바퀴 아래서", response.Title)
}

// TestUpdateBookNotFound tests the 404 path on update
func (suite *BookHandlerTestSuite) TestUpdateBookNotFound() {
	bookID := uuid.New()
	body := map[string]interface{}{
		"title":  "데미안",
		"author": "헤르만 헤세",
	}

	suite.mockService.EXPECT().
		UpdateBook(bookID, gomock.Any()).
		Return(nil, apperrors.ErrBookNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodPut, "/books/"+bookID.String(), body)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteBook tests deleting a book
func (suite *BookHandlerTestSuite) TestDeleteBook() {
	bookID := uuid.New()

	suite.mockService.EXPECT().
		DeleteBook(bookID).
		Return(nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/books/"+bookID.String(), nil)

	testutils.AssertMessageResponse(suite.T(), recorder, http.StatusOK, "Book deleted successfully")
}

// TestDeleteBookNotFound tests the 404 path on delete
func (suite *BookHandlerTestSuite) TestDeleteBookNotFound() {
	bookID := uuid.New()

	suite.mockService.EXPECT().
		DeleteBook(bookID).
		Return(apperrors.ErrBookNotFound).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/books/"+bookID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestBookHandlerTestSuite runs the test suite
func TestBookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookHandlerTestSuite))
}

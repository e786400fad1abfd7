package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic/errors"

	"github.com/gin-gonic/gin"
)

func TestDeletedMessage(t *testing.T) {
	if got := deletedMessage(1); got != "Đã xóa 1 lịch" {
		t.Fatalf("thông điệp phải kèm số lịch đã xóa, nhận %q", got)
	}
	if got := deletedMessage(12); got != "Đã xóa 12 lịch" {
		t.Fatalf("thông điệp phải kèm số lịch đã xóa, nhận %q", got)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, err)
		return w
	}

	t.Run("trùng lịch giường trả về 409", func(t *testing.T) {
		w := run(errors.NewAppError(errors.ErrCodeBedBusy, "Giường đã được đặt trong khung giờ này", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("mong đợi 409, nhận %d", w.Code)
		}
	})

	t.Run("không tìm thấy lịch trả về 404", func(t *testing.T) {
		w := run(errors.NewAppError(errors.ErrCodeScheduleNotFound, "Không tìm thấy lịch", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("mong đợi 404, nhận %d", w.Code)
		}
	})

	t.Run("thiếu xác nhận trả về 400", func(t *testing.T) {
		w := run(errors.NewAppError(errors.ErrCodeConfirmationRequired, "Cần xác nhận trước khi xóa toàn bộ lịch", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("mong đợi 400, nhận %d", w.Code)
		}
	})

	t.Run("lỗi thường trả về 500", func(t *testing.T) {
		w := run(errors.ErrInvalidInput)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("mong đợi 500, nhận %d", w.Code)
		}
	})
}

package httpapi

import (
	"github.com/gin-gonic/gin"

	"campusattend/internal/auth"
)

// Register mounts every route. requireUser runs on all authenticated routes;
// admin routes additionally require the admin role.
func Register(r *gin.Engine, h *Handler, requireUser gin.HandlerFunc) {
	r.POST("/v1/auth/signup", h.SignUp)
	r.POST("/v1/auth/login", h.Login)

	v1 := r.Group("/v1", requireUser)
	{
		v1.POST("/attendance/check-in", h.CheckIn)
		v1.POST("/attendance/check-out", h.CheckOut)
		v1.GET("/attendance/me", h.MyAttendance)

		v1.POST("/leaves", h.ApplyLeave)
		v1.GET("/leaves/me", h.MyLeaves)
		v1.GET("/leaves/balance", h.MyLeaveBalance)

		v1.GET("/manager", h.MyManager)

		v1.GET("/notices", h.MyNotices)
		v1.POST("/notices/:id/reactions", h.ReactToNotice)

		v1.POST("/complaints", h.SubmitComplaint)
		v1.GET("/complaints/me", h.MyComplaints)

		v1.GET("/teachers", h.AllTeachers)
		v1.GET("/teachers/me", h.MyTeachers)
		v1.GET("/semesters", h.AllSemesters)

		v1.POST("/uploads", h.Upload)
	}

	admin := v1.Group("/admin", auth.RequireAdmin())
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/attendance", h.AllAttendance)
		admin.POST("/attendance", h.AddAttendance)
		admin.POST("/attendance/update", h.UpdateAttendance)
		admin.DELETE("/attendance", h.DeleteAttendance)
		admin.GET("/attendance/export", h.ExportAttendance)

		admin.GET("/students", h.AllStudents)

		admin.GET("/leaves", h.AllLeaves)
		admin.POST("/leaves/decide", h.DecideLeave)

		admin.GET("/notices", h.AllNotices)
		admin.POST("/notices", h.CreateNotice)
		admin.POST("/notices/:id", h.UpdateNotice)
		admin.DELETE("/notices/:id", h.DeleteNotice)

		admin.GET("/complaints", h.AllComplaints)
		admin.POST("/complaints/decide", h.DecideComplaint)

		admin.POST("/teachers", h.AddTeacher)
		admin.POST("/teachers/:id", h.UpdateTeacher)
		admin.DELETE("/teachers/:id", h.DeleteTeacher)

		admin.POST("/semesters", h.AddSemester)
	}
}

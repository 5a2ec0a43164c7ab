package converter

import (
	"github.com/daily-report-api/internal/domain"
	"github.com/daily-report-api/internal/dto"
)

func ToFollowModel(v *dto.FollowView) *domain.Follow {
	if v == nil {
		return nil
	}
	f := &domain.Follow{
		ID:        v.ID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		Follower:  ToEmployeeModel(v.Follower),
		Followed:  ToEmployeeModel(v.Followed),
	}
	if v.Follower != nil {
		f.FollowerID = v.Follower.ID
	}
	if v.Followed != nil {
		f.FollowedID = v.Followed.ID
	}
	return f
}

func ToFollowView(f *domain.Follow) *dto.FollowView {
	if f == nil {
		return nil
	}
	v := &dto.FollowView{
		ID:        f.ID,
		Follower:  ToEmployeeView(f.Follower),
		Followed:  ToEmployeeView(f.Followed),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if v.Follower == nil && f.FollowerID != 0 {
		v.Follower = &dto.EmployeeView{ID: f.FollowerID}
	}
	if v.Followed == nil && f.FollowedID != 0 {
		v.Followed = &dto.EmployeeView{ID: f.FollowedID}
	}
	return v
}

func ToFollowViewList(list []domain.Follow) []dto.FollowView {
	views := make([]dto.FollowView, 0, len(list))
	for i := range list {
		views = append(views, *ToFollowView(&list[i]))
	}
	return views
}

func CopyFollowViewToModel(f *domain.Follow, v *dto.FollowView) {
	f.ID = v.ID
	f.Follower = ToEmployeeModel(v.Follower)
	if v.Follower != nil {
		f.FollowerID = v.Follower.ID
	}
	f.Followed = ToEmployeeModel(v.Followed)
	if v.Followed != nil {
		f.FollowedID = v.Followed.ID
	}
	f.CreatedAt = v.CreatedAt
	f.UpdatedAt = v.UpdatedAt
}

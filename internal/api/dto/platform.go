package dto

// PlatformDTO 平台基础信息
type PlatformDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CreatePlatformDTO 新增平台，三个字段均必填
type CreatePlatformDTO struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
	Color string `json:"color" validate:"required"`
}

// DeletePlatformDTO 删除平台
type DeletePlatformDTO struct {
	ID uint64 `json:"id"`
}

// DeletedPlatformDTO 删除结果
type DeletedPlatformDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PlatformStatDTO 平台最新粉丝数与增长率
type PlatformStatDTO struct {
	ID                uint64  `json:"id"`
	Name              string  `json:"name"`
	Icon              string  `json:"icon"`
	Color             string  `json:"color"`
	Followers         int64   `json:"followers"`
	PreviousFollowers int64   `json:"previous_followers"`
	Growth            float64 `json:"growth"`
}

// PlatformComparisonDTO 平台对比图的一行
type PlatformComparisonDTO struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Followers  int64   `json:"followers"`
	Engagement float64 `json:"engagement"`
	Growth     float64 `json:"growth"`
}

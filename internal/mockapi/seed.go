package mockapi

import (
	"fmt"
	"time"

	"Tripnote/models"
)

var seedAuthors = []string{"alice", "bob", "carol"}

var seedTitles = []string{
	"西湖断桥的清晨",
	"成都三天两夜吃喝攻略",
	"洱海骑行路线",
	"故宫雪景机位",
	"厦门鼓浪屿小众咖啡馆",
	"川西自驾避坑指南",
	"青岛啤酒节现场",
	"桂林阳朔竹筏漂流",
	"哈尔滨冰雪大世界",
	"敦煌鸣沙山日落",
}

// DefaultSeed 内置数据：3 个用户，10 篇已审核游记和 1 篇待审核
func DefaultSeed() *Seed {
	seed := &Seed{
		Users: []models.User{
			{
				ID:       "alice",
				Password: "123456",
				Name:     "Alice",
				Profile: models.Profile{
					Avatar:    "https://img.tripnote.local/avatar/alice.png",
					Nickname:  "阿丽",
					Gender:    "female",
					City:      "杭州",
					Signature: "在路上",
				},
				Following: []string{"bob"},
				Fans:      []string{},
				Favorites: []string{"n2", "n5"},
			},
			{
				ID:       "bob",
				Password: "654321",
				Profile: models.Profile{
					Avatar:   "https://img.tripnote.local/avatar/bob.png",
					Nickname: "Bob",
					City:     "成都",
				},
				Following: []string{},
				Fans:      []string{"alice"},
				Favorites: []string{},
			},
			{
				ID:        "carol",
				Password:  "carol123",
				Profile:   models.Profile{Nickname: "Carol"},
				Following: []string{},
				Fans:      []string{},
				Favorites: []string{},
			},
		},
	}

	base := time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	for i, title := range seedTitles {
		seed.Notes = append(seed.Notes, models.Note{
			ID:        fmt.Sprintf("n%d", i+1),
			UserID:    seedAuthors[i%len(seedAuthors)],
			Title:     title,
			Content:   title + "，记录一下这次旅行。",
			Image:     []string{fmt.Sprintf("https://img.tripnote.local/note/n%d.jpg", i+1)},
			Status:    models.NoteStatusApproved,
			CreatedAt: base.Add(-time.Duration(i) * 24 * time.Hour).Format(time.RFC3339),
			Comments:  []models.Comment{},
		})
	}
	seed.Notes[0].Comments = []models.Comment{
		{ID: "c1", UserID: "bob", Content: "拍得真好", CreatedAt: base.Format(time.RFC3339)},
		{ID: "c2", UserID: "carol", Content: "收藏了", CreatedAt: base.Add(time.Hour).Format(time.RFC3339)},
	}
	seed.Notes[2].Video = "https://img.tripnote.local/video/n3.mp4"
	seed.Notes = append(seed.Notes, models.Note{
		ID:        "n11",
		UserID:    "carol",
		Title:     "待审核的游记",
		Content:   "还没通过审核",
		Image:     []string{},
		Status:    "pending",
		CreatedAt: base.Add(time.Hour).Format(time.RFC3339),
		Comments:  []models.Comment{},
	})
	return seed
}

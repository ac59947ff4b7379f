package shamir

import (
	"strconv"

	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

func invalidShareType(index int) error {
	return shamirerr.New(shamirerr.InvalidShareType, "element "+strconv.Itoa(index))
}

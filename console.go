package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/crystalbridge/builderweb/scene"
)

type console struct {
	view  *view
	theme *scene.Theme
	// setDark switches the theme together with the page. Nil switches
	// only the scene.
	setDark func(dark bool)
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errOutOfRange = errors.New("value out of range")

var consoleCommands = map[string]func(c *console, args []float64) ([][]float64, error){
	"orientation": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
			return [][]float64{{c.view.cur.pitch, c.view.cur.yaw}}, nil
		default:
			return nil, errArgumentNumber
		}
	},
	"target": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 2:
			c.view.setTarget(args[0], args[1])
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{c.view.target.pitch, c.view.target.yaw}}, nil
	},
	"damping": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 1:
			if !c.view.setDamping(args[0]) {
				return nil, errOutOfRange
			}
		default:
			return nil, errArgumentNumber
		}
		return [][]float64{{c.view.cfg.Damping}}, nil
	},
	"dark": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
		case 1:
			if c.setDark != nil {
				c.setDark(args[0] != 0)
			} else {
				c.theme.Set(args[0] != 0)
			}
		default:
			return nil, errArgumentNumber
		}
		if c.theme.Dark() {
			return [][]float64{{1}}, nil
		}
		return [][]float64{{0}}, nil
	},
	"reset": func(c *console, args []float64) ([][]float64, error) {
		switch len(args) {
		case 0:
			c.view.reset()
			return nil, nil
		default:
			return nil, errArgumentNumber
		}
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float64
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, f)
	}
	res, err := fn(c, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(v, 'f', 3, 64))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}

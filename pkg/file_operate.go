package pkg

import "os"

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadFileString 读取文件内容并返回字符串
func ReadFileString(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFileString 把字符串内容写入文件
func WriteFileString(filePath string, content string) error {
	return os.WriteFile(filePath, []byte(content), 0o644)
}

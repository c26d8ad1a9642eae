package models

// JointName identifies one anatomical landmark tracked by the capture system.
type JointName string

// Canonical joint labels. The order of JointNames below is the column
// contract for the capture exports: raw numeric columns are partitioned
// into len(JointNames) equal blocks, one block per joint, in this order.
const (
	Head          JointName = "head"
	Neck          JointName = "neck"
	LeftShoulder  JointName = "left_shoulder"
	RightShoulder JointName = "right_shoulder"
	LeftElbow     JointName = "left_elbow"
	RightElbow    JointName = "right_elbow"
	LeftWrist     JointName = "left_wrist"
	RightWrist    JointName = "right_wrist"
	Pelvis        JointName = "pelvis"
	LeftHip       JointName = "left_hip"
	RightHip      JointName = "right_hip"
	LeftKnee      JointName = "left_knee"
	RightKnee     JointName = "right_knee"
	LeftAnkle     JointName = "left_ankle"
	RightAnkle    JointName = "right_ankle"
	LeftFoot      JointName = "left_foot"
	RightFoot     JointName = "right_foot"
)

// JointNames is the ordered enumeration used to partition raw columns.
// Do not reorder: file layout depends on this sequence.
var JointNames = []JointName{
	Head, Neck,
	LeftShoulder, RightShoulder,
	LeftElbow, RightElbow,
	LeftWrist, RightWrist,
	Pelvis,
	LeftHip, RightHip,
	LeftKnee, RightKnee,
	LeftAnkle, RightAnkle,
	LeftFoot, RightFoot,
}

// NumJoints is the number of tracked joints.
var NumJoints = len(JointNames)

// BoneConnection is an unordered pair of joints defining a skeletal edge
// for the 3D viewer.
type BoneConnection struct {
	A JointName `json:"a"`
	B JointName `json:"b"`
}

// Bones is the fixed skeleton topology rendered by the viewer.
var Bones = []BoneConnection{
	{Head, Neck},
	{Neck, LeftShoulder},
	{Neck, RightShoulder},
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},
	{Neck, Pelvis},
	{Pelvis, LeftHip},
	{Pelvis, RightHip},
	{LeftHip, LeftKnee},
	{LeftKnee, LeftAnkle},
	{LeftAnkle, LeftFoot},
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
	{RightAnkle, RightFoot},
}
